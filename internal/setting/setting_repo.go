package setting

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=setting_repo.go -destination=mock/setting_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindAll(ctx context.Context) ([]Setting, error)
	FindByTitle(ctx context.Context, title string) (*Setting, error)
	Upsert(ctx context.Context, s *Setting) error
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

func (r *repository) FindAll(ctx context.Context) ([]Setting, error) {
	var settings []Setting
	err := r.db.WithContext(ctx).
		Order("title asc").
		Find(&settings).Error
	return settings, err
}

func (r *repository) FindByTitle(ctx context.Context, title string) (*Setting, error) {
	var s Setting
	err := r.db.WithContext(ctx).
		Where("title = ?", title).
		First(&s).Error
	return &s, err
}

func (r *repository) Upsert(ctx context.Context, s *Setting) error {
	var existing Setting
	err := r.db.WithContext(ctx).
		Where("title = ?", s.Title).
		First(&existing).Error
	if err == nil {
		existing.Value = s.Value
		*s = existing
		return r.db.WithContext(ctx).Save(&existing).Error
	}
	if err == gorm.ErrRecordNotFound {
		return r.db.WithContext(ctx).Create(s).Error
	}
	return err
}
