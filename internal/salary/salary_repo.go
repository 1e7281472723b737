package salary

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=salary_repo.go -destination=mock/salary_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, salary *Salary) error
	FindAll(ctx context.Context) ([]Salary, error)
	FindByEmployeeID(ctx context.Context, employeeID string) (*Salary, error)
	Update(ctx context.Context, salary *Salary) error
	Delete(ctx context.Context, employeeID string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	session := r.db.Session(&gorm.Session{NewDB: true, Context: context.Background()})
	session.Statement.ConnPool = tx
	return &repository{db: session}
}

func (r *repository) Create(ctx context.Context, salary *Salary) error {
	return r.db.WithContext(ctx).Create(salary).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Salary, error) {
	var salaries []Salary
	err := r.db.WithContext(ctx).
		Order("employee_id asc").
		Find(&salaries).Error
	return salaries, err
}

func (r *repository) FindByEmployeeID(ctx context.Context, employeeID string) (*Salary, error) {
	var salary Salary
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		First(&salary).Error
	return &salary, err
}

func (r *repository) Update(ctx context.Context, salary *Salary) error {
	return r.db.WithContext(ctx).Save(salary).Error
}

func (r *repository) Delete(ctx context.Context, employeeID string) error {
	return r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Delete(&Salary{}).Error
}
