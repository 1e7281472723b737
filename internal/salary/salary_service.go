package salary

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=salary_service.go -destination=mock/salary_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateSalaryRequest) (SalaryResponse, error)
	GetAll(ctx context.Context) ([]SalaryResponse, error)
	GetByEmployeeID(ctx context.Context, employeeID string) (SalaryResponse, error)
	Update(ctx context.Context, employeeID string, req UpdateSalaryRequest) (SalaryResponse, error)
	Delete(ctx context.Context, employeeID string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("salary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salary.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateSalaryRequest) (SalaryResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SalaryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	salary := &Salary{
		ID:               uuid.New(),
		EmployeeID:       req.EmployeeID,
		GrossSalary:      req.GrossSalary,
		FuelEntitlement:  req.FuelEntitlement,
		FuelAllowance:    req.FuelAllowance,
		MedicalAllowance: req.MedicalAllowance,
	}

	if err := qtx.Create(ctx, salary); err != nil {
		return SalaryResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return SalaryResponse{}, err
	}

	s.logger.Info("salary created", zap.String("employee_id", salary.EmployeeID))
	return mapToResponse(*salary), nil
}

func (s *service) GetAll(ctx context.Context) ([]SalaryResponse, error) {
	salaries, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(salaries), nil
}

func (s *service) GetByEmployeeID(ctx context.Context, employeeID string) (SalaryResponse, error) {
	salary, err := s.repo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return SalaryResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*salary), nil
}

func (s *service) Update(ctx context.Context, employeeID string, req UpdateSalaryRequest) (SalaryResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SalaryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	salary, err := qtx.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		return SalaryResponse{}, mapRepositoryError(err)
	}

	salary.GrossSalary = req.GrossSalary
	salary.FuelEntitlement = req.FuelEntitlement
	salary.FuelAllowance = req.FuelAllowance
	salary.MedicalAllowance = req.MedicalAllowance

	if err := qtx.Update(ctx, salary); err != nil {
		return SalaryResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return SalaryResponse{}, err
	}

	s.logger.Info("salary updated", zap.String("employee_id", employeeID))
	return mapToResponse(*salary), nil
}

func (s *service) Delete(ctx context.Context, employeeID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByEmployeeID(ctx, employeeID); err != nil {
		return mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, employeeID); err != nil {
		return mapRepositoryError(err)
	}

	return tx.Commit()
}

func mapToResponse(salary Salary) SalaryResponse {
	return SalaryResponse{
		ID:               salary.ID.String(),
		EmployeeID:       salary.EmployeeID,
		GrossSalary:      salary.GrossSalary,
		FuelEntitlement:  salary.FuelEntitlement,
		FuelAllowance:    salary.FuelAllowance,
		MedicalAllowance: salary.MedicalAllowance,
	}
}

func mapToListResponse(salaries []Salary) []SalaryResponse {
	res := make([]SalaryResponse, len(salaries))
	for i, salary := range salaries {
		res[i] = mapToResponse(salary)
	}
	return res
}
