package attendance

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	attendanceerrors "github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/attendance/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	ClockIn(ctx context.Context, employeeID string) (AttendanceResponse, error)
	ClockOut(ctx context.Context, employeeID string) (AttendanceResponse, error)
	Upsert(ctx context.Context, req UpsertAttendanceRequest) (AttendanceResponse, error)
	GetByMonth(ctx context.Context, employeeID string, month, year int) ([]AttendanceResponse, error)
	GetAllByMonth(ctx context.Context, month, year int) ([]AttendanceResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{db: db, repo: repo, now: time.Now, logger: l}
}

// NewServiceWithClock is used by tests that need a fixed clock.
func NewServiceWithClock(db *sql.DB, repo Repository, now func() time.Time) Service {
	return &service{db: db, repo: repo, now: now, logger: zap.L().Named("attendance.service")}
}

// isLateArrival reports whether an in-time falls after the 10:15 grace
// cutoff. The same cutoff drives half-day detection in payroll.
func isLateArrival(t time.Time) bool {
	return t.Hour() > 10 || (t.Hour() == 10 && t.Minute() > 15)
}

func validStatus(status string) bool {
	switch status {
	case StatusPresent, StatusAbsent, StatusLate, StatusHalfday, StatusLeave:
		return true
	}
	return false
}

func validPeriod(month, year int) bool {
	return month >= 1 && month <= 12 && year >= 2000 && year <= 9999
}

func formatWorkingHours(in, out time.Time) *string {
	if !out.After(in) {
		return nil
	}
	hours := out.Sub(in).Hours()
	formatted := strconv.FormatFloat(hours, 'f', 2, 64)
	return &formatted
}

func (s *service) ClockIn(ctx context.Context, employeeID string) (AttendanceResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	_, err = qtx.FindByEmployeeAndDate(ctx, employeeID, today)
	if err == nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyClockedIn
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return AttendanceResponse{}, err
	}

	status := StatusPresent
	if isLateArrival(now) {
		status = StatusLate
	}

	row := &Attendance{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		Date:       today,
		Status:     status,
		InTime:     &now,
	}

	if err := qtx.Create(ctx, row); err != nil {
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	s.logger.Info("clock in recorded",
		zap.String("employee_id", employeeID),
		zap.String("status", status),
	)
	return mapToResponse(*row), nil
}

func (s *service) ClockOut(ctx context.Context, employeeID string) (AttendanceResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	row, err := qtx.FindByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrNotClockedIn
		}
		return AttendanceResponse{}, err
	}
	if row.OutTime != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyClockedOut
	}

	row.OutTime = &now
	if row.InTime != nil {
		row.WorkingHours = formatWorkingHours(*row.InTime, now)
	}

	if err := qtx.Update(ctx, row); err != nil {
		return AttendanceResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	s.logger.Info("clock out recorded", zap.String("employee_id", employeeID))
	return mapToResponse(*row), nil
}

// Upsert lets HR correct or backfill a day. Times are wall-clock HH:MM on
// the given date.
func (s *service) Upsert(ctx context.Context, req UpsertAttendanceRequest) (AttendanceResponse, error) {
	if !validStatus(req.Status) {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidStatus
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidDate
	}

	inTime, err := parseClock(date, req.InTime)
	if err != nil {
		return AttendanceResponse{}, err
	}
	outTime, err := parseClock(date, req.OutTime)
	if err != nil {
		return AttendanceResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, err
		}
		row = &Attendance{
			ID:         uuid.New(),
			EmployeeID: req.EmployeeID,
			Date:       date,
		}
		row.Status = req.Status
		row.InTime = inTime
		row.OutTime = outTime
		if inTime != nil && outTime != nil {
			row.WorkingHours = formatWorkingHours(*inTime, *outTime)
		}
		if err := qtx.Create(ctx, row); err != nil {
			return AttendanceResponse{}, err
		}
	} else {
		row.Status = req.Status
		row.InTime = inTime
		row.OutTime = outTime
		row.WorkingHours = nil
		if inTime != nil && outTime != nil {
			row.WorkingHours = formatWorkingHours(*inTime, *outTime)
		}
		if err := qtx.Update(ctx, row); err != nil {
			return AttendanceResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	s.logger.Info("attendance upserted",
		zap.String("employee_id", req.EmployeeID),
		zap.String("date", req.Date),
		zap.String("status", req.Status),
	)
	return mapToResponse(*row), nil
}

func (s *service) GetByMonth(ctx context.Context, employeeID string, month, year int) ([]AttendanceResponse, error) {
	if !validPeriod(month, year) {
		return nil, attendanceerrors.ErrInvalidPeriod
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	rows, err := s.repo.FindByEmployeeAndRange(ctx, employeeID, from, to)
	if err != nil {
		return nil, err
	}

	return mapToListResponse(rows), nil
}

func (s *service) GetAllByMonth(ctx context.Context, month, year int) ([]AttendanceResponse, error) {
	if !validPeriod(month, year) {
		return nil, attendanceerrors.ErrInvalidPeriod
	}

	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	rows, err := s.repo.FindByRange(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return mapToListResponse(rows), nil
}

func parseClock(date time.Time, value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("15:04", *value)
	if err != nil {
		return nil, attendanceerrors.ErrInvalidDate
	}
	t := time.Date(date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, date.Location())
	return &t, nil
}

func mapToResponse(row Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:           row.ID.String(),
		EmployeeID:   row.EmployeeID,
		Date:         row.Date.Format("2006-01-02"),
		Status:       row.Status,
		WorkingHours: row.WorkingHours,
	}
	if row.InTime != nil {
		formatted := row.InTime.Format(time.RFC3339)
		resp.InTime = &formatted
	}
	if row.OutTime != nil {
		formatted := row.OutTime.Format(time.RFC3339)
		resp.OutTime = &formatted
	}
	return resp
}

func mapToListResponse(rows []Attendance) []AttendanceResponse {
	res := make([]AttendanceResponse, len(rows))
	for i, row := range rows {
		res[i] = mapToResponse(row)
	}
	return res
}
