package leave

import (
	"context"
	"database/sql"
	"errors"
	"time"

	leaveerrors "github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/leave/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, employeeID string, req CreateLeaveRequest) (LeaveResponse, error)
	GetAll(ctx context.Context, actorEmployeeID string, canReadAll bool) ([]LeaveResponse, error)
	GetByID(ctx context.Context, id string) (LeaveResponse, error)
	Decide(ctx context.Context, id string, req DecideLeaveRequest) (LeaveResponse, error)
	Delete(ctx context.Context, id string, actorEmployeeID string, canManageAll bool) error
}

// AllowanceProvider reports the configured number of paid leave days an
// employee may take per month. Implemented by setting.Service.
type AllowanceProvider interface {
	LeavesAllowed(ctx context.Context) float64
}

type service struct {
	db        *sql.DB
	repo      Repository
	allowance AllowanceProvider
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

// NewServiceWithAllowance also checks approvals against the configured
// monthly leave allowance, logging a warning when an approval pushes an
// employee past it.
func NewServiceWithAllowance(db *sql.DB, repo Repository, allowance AllowanceProvider, logger ...*zap.Logger) Service {
	svc := NewService(db, repo, logger...).(*service)
	svc.allowance = allowance
	return svc
}

func (s *service) Create(ctx context.Context, employeeID string, req CreateLeaveRequest) (LeaveResponse, error) {
	if req.LeaveType != TypeFullDay && req.LeaveType != TypeHalfDay {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveType
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.ExistsForDate(ctx, employeeID, date)
	if err != nil {
		return LeaveResponse{}, err
	}
	if exists {
		return LeaveResponse{}, leaveerrors.ErrDuplicateLeave
	}

	l := &Leave{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		Date:       date,
		LeaveType:  req.LeaveType,
		Status:     StatusPending,
		Reason:     req.Reason,
	}

	if err := qtx.Create(ctx, l); err != nil {
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return LeaveResponse{}, err
	}

	s.logger.Info("leave requested",
		zap.String("employee_id", employeeID),
		zap.String("date", req.Date),
		zap.String("leave_type", req.LeaveType),
	)
	return mapToResponse(*l), nil
}

func (s *service) GetAll(ctx context.Context, actorEmployeeID string, canReadAll bool) ([]LeaveResponse, error) {
	var (
		leaves []Leave
		err    error
	)
	if canReadAll {
		leaves, err = s.repo.FindAll(ctx)
	} else {
		leaves, err = s.repo.FindAllByEmployee(ctx, actorEmployeeID)
	}
	if err != nil {
		return nil, err
	}

	return mapToListResponse(leaves), nil
}

func (s *service) GetByID(ctx context.Context, id string) (LeaveResponse, error) {
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}

	return mapToResponse(*l), nil
}

func (s *service) Decide(ctx context.Context, id string, req DecideLeaveRequest) (LeaveResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}

	if l.Status != StatusPending {
		return LeaveResponse{}, leaveerrors.ErrAlreadyDecided
	}

	if req.Status == StatusApproved {
		s.checkAllowance(ctx, qtx, l)
	}

	l.Status = req.Status

	if err := qtx.Update(ctx, l); err != nil {
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return LeaveResponse{}, err
	}

	s.logger.Info("leave decided",
		zap.String("leave_id", id),
		zap.String("status", req.Status),
	)
	return mapToResponse(*l), nil
}

func (s *service) Delete(ctx context.Context, id string, actorEmployeeID string, canManageAll bool) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return leaveerrors.ErrLeaveNotFound
		}
		return err
	}

	if !canManageAll {
		if l.EmployeeID != actorEmployeeID {
			return leaveerrors.ErrNotOwner
		}
		if l.Status != StatusPending {
			return leaveerrors.ErrAlreadyDecided
		}
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return err
	}

	return tx.Commit()
}

// checkAllowance warns when approving l would take the employee past the
// monthly leave allowance. Approval still goes through; the overage is
// deducted from salary by payroll.
func (s *service) checkAllowance(ctx context.Context, repo Repository, l *Leave) {
	if s.allowance == nil {
		return
	}

	from := time.Date(l.Date.Year(), l.Date.Month(), 1, 0, 0, 0, 0, l.Date.Location())
	to := from.AddDate(0, 1, 0)

	approved, err := repo.FindApprovedInRange(ctx, l.EmployeeID, from, to)
	if err != nil {
		s.logger.Warn("leave allowance check failed",
			zap.String("employee_id", l.EmployeeID),
			zap.Error(err),
		)
		return
	}

	taken := leaveDays(l.LeaveType)
	for _, a := range approved {
		taken += leaveDays(a.LeaveType)
	}

	allowed := s.allowance.LeavesAllowed(ctx)
	if taken > allowed {
		s.logger.Warn("approval exceeds monthly leave allowance",
			zap.String("employee_id", l.EmployeeID),
			zap.Float64("taken", taken),
			zap.Float64("allowed", allowed),
		)
	}
}

func leaveDays(leaveType string) float64 {
	if leaveType == TypeHalfDay {
		return 0.5
	}
	return 1
}

func mapToResponse(l Leave) LeaveResponse {
	return LeaveResponse{
		ID:         l.ID.String(),
		EmployeeID: l.EmployeeID,
		Date:       l.Date.Format("2006-01-02"),
		LeaveType:  l.LeaveType,
		Status:     l.Status,
		Reason:     l.Reason,
	}
}

func mapToListResponse(leaves []Leave) []LeaveResponse {
	res := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		res[i] = mapToResponse(l)
	}
	return res
}
