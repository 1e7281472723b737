package leave

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *Leave) error
	FindAll(ctx context.Context) ([]Leave, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]Leave, error)
	FindByID(ctx context.Context, id string) (*Leave, error)
	FindApprovedInRange(ctx context.Context, employeeID string, from, to time.Time) ([]Leave, error)
	ExistsForDate(ctx context.Context, employeeID string, date time.Time) (bool, error)
	Update(ctx context.Context, l *Leave) error
	Delete(ctx context.Context, id string) error
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

func (r *repository) Create(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Leave, error) {
	var leaves []Leave
	err := r.db.WithContext(ctx).
		Order("date desc").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]Leave, error) {
	var leaves []Leave
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("date desc").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Leave, error) {
	var l Leave
	err := r.db.WithContext(ctx).
		First(&l, "id = ?", id).Error
	return &l, err
}

func (r *repository) FindApprovedInRange(ctx context.Context, employeeID string, from, to time.Time) ([]Leave, error) {
	var leaves []Leave
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND status = ? AND date >= ? AND date < ?",
			employeeID, StatusApproved, from, to).
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) ExistsForDate(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Leave{}).
		Where("employee_id = ? AND date = ? AND status <> ?",
			employeeID, date.Format("2006-01-02"), StatusRejected).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Leave{}, "id = ?", id).Error
}
