package employee

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindIDByUserID(ctx context.Context, userID string) (string, error)
	FindOptions(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, empl *Employee) error
	Delete(ctx context.Context, id string) error
	UpsertBankAccount(ctx context.Context, account *BankAccount) error
	DeleteBankAccount(ctx context.Context, employeeID string) error
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

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Department").
		Preload("BankAccount").
		Order("id asc").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Department").
		Preload("BankAccount").
		First(&empl, "id = ?", id).Error
	return &empl, err
}

func (r *repository) FindIDByUserID(ctx context.Context, userID string) (string, error) {
	var id string
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Select("id").
		Where("user_id = ?", userID).
		Limit(1).
		Scan(&id).Error
	return id, err
}

func (r *repository) FindOptions(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("resign_date IS NULL").
		Order("id asc").
		Find(&empls).Error
	return empls, err
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Save(empl).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Employee{}, "id = ?", id).Error
}

func (r *repository) UpsertBankAccount(ctx context.Context, account *BankAccount) error {
	var existing BankAccount
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", account.EmployeeID).
		First(&existing).Error
	if err == nil {
		account.ID = existing.ID
		account.CreatedAt = existing.CreatedAt
		return r.db.WithContext(ctx).Save(account).Error
	}
	if err == gorm.ErrRecordNotFound {
		return r.db.WithContext(ctx).Create(account).Error
	}
	return err
}

func (r *repository) DeleteBankAccount(ctx context.Context, employeeID string) error {
	return r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Delete(&BankAccount{}).Error
}
