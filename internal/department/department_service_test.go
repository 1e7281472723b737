package department_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/department"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeDepartmentRepository struct {
	withTxFn   func(tx *sql.Tx) department.Repository
	createFn   func(ctx context.Context, dept *department.Department) error
	findAllFn  func(ctx context.Context) ([]department.Department, error)
	findByIDFn func(ctx context.Context, id string) (*department.Department, error)
	updateFn   func(ctx context.Context, dept *department.Department) error
	deleteFn   func(ctx context.Context, id string) error
}

func (f *fakeDepartmentRepository) WithTx(tx *sql.Tx) department.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeDepartmentRepository) Create(ctx context.Context, dept *department.Department) error {
	if f.createFn != nil {
		return f.createFn(ctx, dept)
	}
	return nil
}

func (f *fakeDepartmentRepository) FindAll(ctx context.Context) ([]department.Department, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeDepartmentRepository) FindByID(ctx context.Context, id string) (*department.Department, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return &department.Department{ID: uuid.New()}, nil
}

func (f *fakeDepartmentRepository) Update(ctx context.Context, dept *department.Department) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, dept)
	}
	return nil
}

func (f *fakeDepartmentRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

type departmentServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	repo    *fakeDepartmentRepository
	service department.Service
}

func setupDepartmentService(t *testing.T) *departmentServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeDepartmentRepository{}
	svc := department.NewService(db, repo)

	return &departmentServiceDeps{db: db, sqlMock: sqlMock, repo: repo, service: svc}
}

func TestDepartmentService_Create(t *testing.T) {
	t.Run("success commits and returns the new department", func(t *testing.T) {
		deps := setupDepartmentService(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		var created *department.Department
		deps.repo.createFn = func(ctx context.Context, dept *department.Department) error {
			created = dept
			return nil
		}

		resp, err := deps.service.Create(context.Background(), department.CreateDepartmentRequest{
			Name:        "Engineering",
			Description: "Product engineering",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Engineering", resp.Name)
		assert.NotNil(t, created)
		assert.NotEqual(t, uuid.Nil, created.ID)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("repository error rolls back", func(t *testing.T) {
		deps := setupDepartmentService(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.createFn = func(ctx context.Context, dept *department.Department) error {
			return errors.New("insert failed")
		}

		_, err := deps.service.Create(context.Background(), department.CreateDepartmentRequest{Name: "Ops"})

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestDepartmentService_Update(t *testing.T) {
	deps := setupDepartmentService(t)
	defer deps.db.Close()

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	id := uuid.New()
	deps.repo.findByIDFn = func(ctx context.Context, gotID string) (*department.Department, error) {
		assert.Equal(t, id.String(), gotID)
		return &department.Department{ID: id, Name: "Old"}, nil
	}

	var updated *department.Department
	deps.repo.updateFn = func(ctx context.Context, dept *department.Department) error {
		updated = dept
		return nil
	}

	resp, err := deps.service.Update(context.Background(), id.String(), department.UpdateDepartmentRequest{
		Name: "New",
	})

	assert.NoError(t, err)
	assert.Equal(t, "New", resp.Name)
	assert.Equal(t, "New", updated.Name)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestDepartmentService_Delete_NotFound(t *testing.T) {
	deps := setupDepartmentService(t)
	defer deps.db.Close()

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectRollback()

	deps.repo.findByIDFn = func(ctx context.Context, id string) (*department.Department, error) {
		return nil, gorm.ErrRecordNotFound
	}

	err := deps.service.Delete(context.Background(), uuid.NewString())

	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}
