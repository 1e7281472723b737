package setting

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	settingerrors "github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/setting/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=setting_service.go -destination=mock/setting_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]SettingResponse, error)
	GetByTitle(ctx context.Context, title string) (SettingResponse, error)
	Upsert(ctx context.Context, req UpsertSettingRequest) (SettingResponse, error)

	// FuelRate and LeavesAllowed read the numeric settings payroll
	// depends on, falling back to defaults when the row is absent or not
	// a number.
	FuelRate(ctx context.Context) float64
	LeavesAllowed(ctx context.Context) float64
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("setting.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("setting.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]SettingResponse, error) {
	settings, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]SettingResponse, len(settings))
	for i, row := range settings {
		res[i] = mapToResponse(row)
	}
	return res, nil
}

func (s *service) GetByTitle(ctx context.Context, title string) (SettingResponse, error) {
	row, err := s.repo.FindByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SettingResponse{}, settingerrors.ErrSettingNotFound
		}
		return SettingResponse{}, err
	}

	return mapToResponse(*row), nil
}

func (s *service) Upsert(ctx context.Context, req UpsertSettingRequest) (SettingResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SettingResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row := &Setting{
		ID:    uuid.New(),
		Title: req.Title,
		Value: req.Value,
	}

	if err := qtx.Upsert(ctx, row); err != nil {
		return SettingResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return SettingResponse{}, err
	}

	s.logger.Info("setting upserted",
		zap.String("title", req.Title),
		zap.String("value", req.Value),
	)
	return mapToResponse(*row), nil
}

func (s *service) FuelRate(ctx context.Context) float64 {
	return s.numericSetting(ctx, TitleFuelPrice, DefaultFuelRate)
}

func (s *service) LeavesAllowed(ctx context.Context) float64 {
	return s.numericSetting(ctx, TitleLeavesAllowed, DefaultLeavesAllowed)
}

func (s *service) numericSetting(ctx context.Context, title string, fallback float64) float64 {
	row, err := s.repo.FindByTitle(ctx, title)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("read setting failed, using default",
				zap.String("title", title),
				zap.Error(err),
			)
		}
		return fallback
	}

	value, err := strconv.ParseFloat(row.Value, 64)
	if err != nil {
		s.logger.Warn("setting is not numeric, using default",
			zap.String("title", title),
			zap.String("value", row.Value),
		)
		return fallback
	}
	return value
}

func mapToResponse(row Setting) SettingResponse {
	return SettingResponse{
		ID:    row.ID.String(),
		Title: row.Title,
		Value: row.Value,
	}
}
