package salary_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/salary"
	salaryerrors "github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/salary/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeSalaryRepository struct {
	withTxFn           func(tx *sql.Tx) salary.Repository
	createFn           func(ctx context.Context, s *salary.Salary) error
	findAllFn          func(ctx context.Context) ([]salary.Salary, error)
	findByEmployeeIDFn func(ctx context.Context, employeeID string) (*salary.Salary, error)
	updateFn           func(ctx context.Context, s *salary.Salary) error
	deleteFn           func(ctx context.Context, employeeID string) error
}

func (f *fakeSalaryRepository) WithTx(tx *sql.Tx) salary.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeSalaryRepository) Create(ctx context.Context, s *salary.Salary) error {
	if f.createFn != nil {
		return f.createFn(ctx, s)
	}
	return nil
}

func (f *fakeSalaryRepository) FindAll(ctx context.Context) ([]salary.Salary, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeSalaryRepository) FindByEmployeeID(ctx context.Context, employeeID string) (*salary.Salary, error) {
	if f.findByEmployeeIDFn != nil {
		return f.findByEmployeeIDFn(ctx, employeeID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSalaryRepository) Update(ctx context.Context, s *salary.Salary) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, s)
	}
	return nil
}

func (f *fakeSalaryRepository) Delete(ctx context.Context, employeeID string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, employeeID)
	}
	return nil
}

type salaryServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	repo    *fakeSalaryRepository
	service salary.Service
}

func setupSalaryService(t *testing.T) *salaryServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeSalaryRepository{}
	svc := salary.NewService(db, repo)

	return &salaryServiceDeps{db: db, sqlMock: sqlMock, repo: repo, service: svc}
}

func TestSalaryService_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		deps := setupSalaryService(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		entitlement := 80.0
		resp, err := deps.service.Create(context.Background(), salary.CreateSalaryRequest{
			EmployeeID:       "E0126001",
			GrossSalary:      120000,
			FuelEntitlement:  &entitlement,
			MedicalAllowance: 5000,
		})

		assert.NoError(t, err)
		assert.Equal(t, "E0126001", resp.EmployeeID)
		assert.Equal(t, 80.0, *resp.FuelEntitlement)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate employee maps to conflict", func(t *testing.T) {
		deps := setupSalaryService(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.createFn = func(ctx context.Context, s *salary.Salary) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_salary_employee"}
		}

		_, err := deps.service.Create(context.Background(), salary.CreateSalaryRequest{
			EmployeeID:  "E0126001",
			GrossSalary: 120000,
		})

		assert.ErrorIs(t, err, salaryerrors.ErrSalaryAlreadyExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestSalaryService_Update(t *testing.T) {
	deps := setupSalaryService(t)
	defer deps.db.Close()

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	deps.repo.findByEmployeeIDFn = func(ctx context.Context, employeeID string) (*salary.Salary, error) {
		return &salary.Salary{
			ID:          uuid.New(),
			EmployeeID:  employeeID,
			GrossSalary: 100000,
		}, nil
	}

	var updated *salary.Salary
	deps.repo.updateFn = func(ctx context.Context, s *salary.Salary) error {
		updated = s
		return nil
	}

	resp, err := deps.service.Update(context.Background(), "E0126001", salary.UpdateSalaryRequest{
		GrossSalary:   130000,
		FuelAllowance: 12000,
	})

	assert.NoError(t, err)
	assert.Equal(t, 130000.0, resp.GrossSalary)
	assert.Equal(t, 130000.0, updated.GrossSalary)
	assert.Nil(t, updated.FuelEntitlement)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestSalaryService_GetByEmployeeID_NotFound(t *testing.T) {
	deps := setupSalaryService(t)
	defer deps.db.Close()

	_, err := deps.service.GetByEmployeeID(context.Background(), "E0000000")

	assert.ErrorIs(t, err, salaryerrors.ErrSalaryNotFound)
}
