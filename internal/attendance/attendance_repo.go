package attendance

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, row *Attendance) error
	Update(ctx context.Context, row *Attendance) error
	FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)
	FindByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]Attendance, error)
	FindByRange(ctx context.Context, from, to time.Time) ([]Attendance, error)
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

func (r *repository) Create(ctx context.Context, row *Attendance) error {
	return r.db.WithContext(ctx).Create(row).Error
}

func (r *repository) Update(ctx context.Context, row *Attendance) error {
	return r.db.WithContext(ctx).Save(row).Error
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
	var row Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND date = ?", employeeID, date.Format("2006-01-02")).
		First(&row).Error
	return &row, err
}

func (r *repository) FindByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND date >= ? AND date < ?",
			employeeID, from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("date asc").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByRange(ctx context.Context, from, to time.Time) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("employee_id asc, date asc").
		Find(&rows).Error
	return rows, err
}
