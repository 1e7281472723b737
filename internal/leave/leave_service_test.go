package leave_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/leave"
	leaveerrors "github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/leave/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeLeaveRepository struct {
	withTxFn            func(tx *sql.Tx) leave.Repository
	createFn            func(ctx context.Context, l *leave.Leave) error
	findAllFn           func(ctx context.Context) ([]leave.Leave, error)
	findAllByEmployeeFn func(ctx context.Context, employeeID string) ([]leave.Leave, error)
	findByIDFn          func(ctx context.Context, id string) (*leave.Leave, error)
	findApprovedFn      func(ctx context.Context, employeeID string, from, to time.Time) ([]leave.Leave, error)
	existsForDateFn     func(ctx context.Context, employeeID string, date time.Time) (bool, error)
	updateFn            func(ctx context.Context, l *leave.Leave) error
	deleteFn            func(ctx context.Context, id string) error
}

func (f *fakeLeaveRepository) WithTx(tx *sql.Tx) leave.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeLeaveRepository) Create(ctx context.Context, l *leave.Leave) error {
	if f.createFn != nil {
		return f.createFn(ctx, l)
	}
	return nil
}

func (f *fakeLeaveRepository) FindAll(ctx context.Context) ([]leave.Leave, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) FindAllByEmployee(ctx context.Context, employeeID string) ([]leave.Leave, error) {
	if f.findAllByEmployeeFn != nil {
		return f.findAllByEmployeeFn(ctx, employeeID)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) FindByID(ctx context.Context, id string) (*leave.Leave, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLeaveRepository) FindApprovedInRange(ctx context.Context, employeeID string, from, to time.Time) ([]leave.Leave, error) {
	if f.findApprovedFn != nil {
		return f.findApprovedFn(ctx, employeeID, from, to)
	}
	return nil, nil
}

func (f *fakeLeaveRepository) ExistsForDate(ctx context.Context, employeeID string, date time.Time) (bool, error) {
	if f.existsForDateFn != nil {
		return f.existsForDateFn(ctx, employeeID, date)
	}
	return false, nil
}

func (f *fakeLeaveRepository) Update(ctx context.Context, l *leave.Leave) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, l)
	}
	return nil
}

func (f *fakeLeaveRepository) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func setupLeaveService(t *testing.T) (*fakeLeaveRepository, sqlmock.Sqlmock, *sql.DB, leave.Service) {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeLeaveRepository{}
	svc := leave.NewService(db, repo)
	return repo, sqlMock, db, svc
}

func TestLeaveService_Create(t *testing.T) {
	t.Run("success starts as PENDING", func(t *testing.T) {
		repo, sqlMock, db, svc := setupLeaveService(t)
		defer db.Close()

		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		var created *leave.Leave
		repo.createFn = func(ctx context.Context, l *leave.Leave) error {
			created = l
			return nil
		}

		resp, err := svc.Create(context.Background(), "E0126001", leave.CreateLeaveRequest{
			Date:      "2026-02-10",
			LeaveType: leave.TypeFullDay,
			Reason:    "family event",
		})

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusPending, resp.Status)
		assert.Equal(t, "E0126001", created.EmployeeID)
	})

	t.Run("rejects unknown leave type", func(t *testing.T) {
		_, _, db, svc := setupLeaveService(t)
		defer db.Close()

		_, err := svc.Create(context.Background(), "E0126001", leave.CreateLeaveRequest{
			Date:      "2026-02-10",
			LeaveType: "QUARTER",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidLeaveType)
	})

	t.Run("rejects a second request for the same date", func(t *testing.T) {
		repo, sqlMock, db, svc := setupLeaveService(t)
		defer db.Close()

		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		repo.existsForDateFn = func(ctx context.Context, employeeID string, date time.Time) (bool, error) {
			return true, nil
		}

		_, err := svc.Create(context.Background(), "E0126001", leave.CreateLeaveRequest{
			Date:      "2026-02-10",
			LeaveType: leave.TypeHalfDay,
		})

		assert.ErrorIs(t, err, leaveerrors.ErrDuplicateLeave)
	})
}

func TestLeaveService_Decide(t *testing.T) {
	t.Run("approves a pending request", func(t *testing.T) {
		repo, sqlMock, db, svc := setupLeaveService(t)
		defer db.Close()

		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		id := uuid.New()
		repo.findByIDFn = func(ctx context.Context, gotID string) (*leave.Leave, error) {
			return &leave.Leave{
				ID:         id,
				EmployeeID: "E0126001",
				Date:       time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
				LeaveType:  leave.TypeFullDay,
				Status:     leave.StatusPending,
			}, nil
		}

		resp, err := svc.Decide(context.Background(), id.String(), leave.DecideLeaveRequest{
			Status: leave.StatusApproved,
		})

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, resp.Status)
	})

	t.Run("cannot decide twice", func(t *testing.T) {
		repo, sqlMock, db, svc := setupLeaveService(t)
		defer db.Close()

		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		repo.findByIDFn = func(ctx context.Context, id string) (*leave.Leave, error) {
			return &leave.Leave{
				ID:     uuid.New(),
				Status: leave.StatusApproved,
			}, nil
		}

		_, err := svc.Decide(context.Background(), uuid.NewString(), leave.DecideLeaveRequest{
			Status: leave.StatusRejected,
		})

		assert.ErrorIs(t, err, leaveerrors.ErrAlreadyDecided)
	})
}

type fakeAllowance struct {
	allowed float64
	calls   int
}

func (f *fakeAllowance) LeavesAllowed(ctx context.Context) float64 {
	f.calls++
	return f.allowed
}

func TestLeaveService_DecideConsultsAllowance(t *testing.T) {
	t.Run("approval checks the month's approved leaves against the setting", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		repo := &fakeLeaveRepository{}
		allowance := &fakeAllowance{allowed: 2}
		svc := leave.NewServiceWithAllowance(db, repo, allowance)

		id := uuid.New()
		repo.findByIDFn = func(ctx context.Context, gotID string) (*leave.Leave, error) {
			return &leave.Leave{
				ID:         id,
				EmployeeID: "E0126001",
				Date:       time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
				LeaveType:  leave.TypeFullDay,
				Status:     leave.StatusPending,
			}, nil
		}

		var gotFrom, gotTo time.Time
		repo.findApprovedFn = func(ctx context.Context, employeeID string, from, to time.Time) ([]leave.Leave, error) {
			gotFrom, gotTo = from, to
			assert.Equal(t, "E0126001", employeeID)
			return []leave.Leave{
				{LeaveType: leave.TypeFullDay, Status: leave.StatusApproved},
				{LeaveType: leave.TypeHalfDay, Status: leave.StatusApproved},
			}, nil
		}

		resp, err := svc.Decide(context.Background(), id.String(), leave.DecideLeaveRequest{
			Status: leave.StatusApproved,
		})

		assert.NoError(t, err)
		// The overage is only flagged; the approval itself still goes
		// through and payroll deducts the extra days.
		assert.Equal(t, leave.StatusApproved, resp.Status)
		assert.Equal(t, 1, allowance.calls)
		assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), gotFrom)
		assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), gotTo)
	})

	t.Run("rejection skips the allowance check", func(t *testing.T) {
		db, sqlMock, err := sqlmock.New()
		assert.NoError(t, err)
		defer db.Close()

		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		repo := &fakeLeaveRepository{}
		allowance := &fakeAllowance{allowed: 2}
		svc := leave.NewServiceWithAllowance(db, repo, allowance)

		repo.findByIDFn = func(ctx context.Context, id string) (*leave.Leave, error) {
			return &leave.Leave{
				ID:         uuid.New(),
				EmployeeID: "E0126001",
				Date:       time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
				LeaveType:  leave.TypeFullDay,
				Status:     leave.StatusPending,
			}, nil
		}

		_, err = svc.Decide(context.Background(), uuid.NewString(), leave.DecideLeaveRequest{
			Status: leave.StatusRejected,
		})

		assert.NoError(t, err)
		assert.Zero(t, allowance.calls)
	})
}

func TestLeaveService_Delete(t *testing.T) {
	t.Run("owner can delete while pending", func(t *testing.T) {
		repo, sqlMock, db, svc := setupLeaveService(t)
		defer db.Close()

		sqlMock.ExpectBegin()
		sqlMock.ExpectCommit()

		repo.findByIDFn = func(ctx context.Context, id string) (*leave.Leave, error) {
			return &leave.Leave{ID: uuid.New(), EmployeeID: "E0126001", Status: leave.StatusPending}, nil
		}

		err := svc.Delete(context.Background(), uuid.NewString(), "E0126001", false)
		assert.NoError(t, err)
	})

	t.Run("owner cannot delete an approved request", func(t *testing.T) {
		repo, sqlMock, db, svc := setupLeaveService(t)
		defer db.Close()

		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		repo.findByIDFn = func(ctx context.Context, id string) (*leave.Leave, error) {
			return &leave.Leave{ID: uuid.New(), EmployeeID: "E0126001", Status: leave.StatusApproved}, nil
		}

		err := svc.Delete(context.Background(), uuid.NewString(), "E0126001", false)
		assert.ErrorIs(t, err, leaveerrors.ErrAlreadyDecided)
	})

	t.Run("someone else's request is forbidden", func(t *testing.T) {
		repo, sqlMock, db, svc := setupLeaveService(t)
		defer db.Close()

		sqlMock.ExpectBegin()
		sqlMock.ExpectRollback()

		repo.findByIDFn = func(ctx context.Context, id string) (*leave.Leave, error) {
			return &leave.Leave{ID: uuid.New(), EmployeeID: "E0126002", Status: leave.StatusPending}, nil
		}

		err := svc.Delete(context.Background(), uuid.NewString(), "E0126001", false)
		assert.ErrorIs(t, err, leaveerrors.ErrNotOwner)
	})
}
