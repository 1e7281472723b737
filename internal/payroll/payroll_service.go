package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/employee"
	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/events"
	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/messaging/kafka"
	payrollerrors "github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/payroll/errors"
	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/shared/contextutil"
)

// RateProvider supplies the org-wide rates payroll depends on. The
// settings service satisfies it.
type RateProvider interface {
	FuelRate(ctx context.Context) float64
}

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Calculate(ctx context.Context, employeeID string, month, year int) (Calculation, error)
	CalculateRaw(ctx context.Context, employeeID string, month, year int) (Calculation, error)
	CalculateAll(ctx context.Context, month, year int) ([]Calculation, error)
	Edit(ctx context.Context, req EditPayrollRequest) (Calculation, error)
	GenerateSlip(ctx context.Context, req GenerateSlipRequest) (SlipResponse, error)
	GetSlip(ctx context.Context, employeeID string, month, year int) (SlipResponse, error)
	ListSlips(ctx context.Context, month, year int) ([]SlipResponse, error)
	RenderSlipPDF(ctx context.Context, employeeID string, month, year int) ([]byte, string, error)
	ExportCSV(ctx context.Context, month, year int, bankFilter string) ([]byte, string, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rates  RateProvider
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	rates RateProvider,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		rates:  rates,
		outbox: outboxRepo,
		logger: l,
	}
}

func validPeriod(month, year int) bool {
	return month >= 1 && month <= 12 && year >= 2000 && year <= 9999
}

// periodRange returns the half-open [from, to) interval covering the
// given calendar month.
func periodRange(month, year int) (time.Time, time.Time) {
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}

// calculateFor computes payroll for one employee through the given
// repository, so callers inside a transaction see their own writes.
func (s *service) calculateFor(ctx context.Context, repo Repository, employeeID string, month, year int, withAdjustments bool) (Calculation, error) {
	emp, err := repo.FindEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Calculation{}, payrollerrors.ErrEmployeeNotFound
		}
		return Calculation{}, err
	}

	sal, err := repo.FindSalary(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Calculation{}, payrollerrors.ErrSalaryNotFound
		}
		return Calculation{}, err
	}

	from, to := periodRange(month, year)
	records, err := repo.FindAttendance(ctx, employeeID, from, to)
	if err != nil {
		return Calculation{}, err
	}
	leaves, err := repo.FindApprovedLeaves(ctx, employeeID, from, to)
	if err != nil {
		return Calculation{}, err
	}

	calc := computeRaw(emp, sal, records, leaves, s.rates.FuelRate(ctx))
	if !withAdjustments {
		return calc, nil
	}

	adj, err := repo.FindAdjustment(ctx, employeeID, month, year)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return calc, nil
		}
		return Calculation{}, err
	}
	return adj.Deltas().Apply(calc), nil
}

func (s *service) Calculate(ctx context.Context, employeeID string, month, year int) (Calculation, error) {
	if !validPeriod(month, year) {
		return Calculation{}, payrollerrors.ErrInvalidPeriod
	}
	return s.calculateFor(ctx, s.repo, employeeID, month, year, true)
}

func (s *service) CalculateRaw(ctx context.Context, employeeID string, month, year int) (Calculation, error) {
	if !validPeriod(month, year) {
		return Calculation{}, payrollerrors.ErrInvalidPeriod
	}
	return s.calculateFor(ctx, s.repo, employeeID, month, year, false)
}

func (s *service) CalculateAll(ctx context.Context, month, year int) ([]Calculation, error) {
	if !validPeriod(month, year) {
		return nil, payrollerrors.ErrInvalidPeriod
	}

	employees, err := s.repo.FindActiveEmployees(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]Calculation, 0, len(employees))
	for _, emp := range employees {
		calc, err := s.calculateFor(ctx, s.repo, emp.ID, month, year, true)
		if err != nil {
			if errors.Is(err, payrollerrors.ErrSalaryNotFound) {
				s.logger.Warn("skipping employee without salary record",
					zap.String("employee_id", emp.ID),
				)
				continue
			}
			return nil, err
		}
		results = append(results, calc)
	}
	return results, nil
}

func hasBankFields(u PayrollUpdates) bool {
	return u.BankName != nil && *u.BankName != "" &&
		u.AccountTitle != nil && *u.AccountTitle != "" &&
		u.AccountNo != nil && *u.AccountNo != "" &&
		u.BranchCode != nil && *u.BranchCode != ""
}

// Edit applies a payroll edit in a single transaction: identity and
// salary fields write through to their owning records, bank details
// follow the payment mode, and derived figures are stored as deltas
// against the freshly recomputed raw calculation.
func (s *service) Edit(ctx context.Context, req EditPayrollRequest) (Calculation, error) {
	if !validPeriod(req.Month, req.Year) {
		return Calculation{}, payrollerrors.ErrInvalidPeriod
	}
	if req.Updates.ModeOfPayment != nil && *req.Updates.ModeOfPayment == "Online" && !hasBankFields(req.Updates) {
		return Calculation{}, payrollerrors.ErrBankFieldsRequired
	}

	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("payroll edit requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
		zap.Int("month", req.Month),
		zap.Int("year", req.Year),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("payroll edit begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return Calculation{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	emp, err := qtx.FindEmployee(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Calculation{}, payrollerrors.ErrEmployeeNotFound
		}
		return Calculation{}, err
	}

	u := req.Updates
	if u.Name != nil {
		if err := qtx.UpdateUserName(ctx, emp.UserID.String(), *u.Name); err != nil {
			return Calculation{}, err
		}
	}
	if u.Designation != nil || u.Location != nil {
		if u.Designation != nil {
			emp.Designation = *u.Designation
		}
		if u.Location != nil {
			emp.Location = *u.Location
		}
		if err := qtx.UpdateEmployee(ctx, emp); err != nil {
			return Calculation{}, err
		}
	}

	if u.GrossSalary != nil || u.FuelEntitlement != nil || u.FuelAmount != nil {
		sal, err := qtx.FindSalary(ctx, req.EmployeeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return Calculation{}, payrollerrors.ErrSalaryNotFound
			}
			return Calculation{}, err
		}
		if u.GrossSalary != nil {
			sal.GrossSalary = *u.GrossSalary
		}
		if u.FuelEntitlement != nil {
			sal.FuelEntitlement = u.FuelEntitlement
		}
		if u.FuelAmount != nil {
			sal.FuelAllowance = *u.FuelAmount
		}
		if err := qtx.UpdateSalary(ctx, sal); err != nil {
			return Calculation{}, err
		}
	}

	if u.ModeOfPayment != nil {
		switch *u.ModeOfPayment {
		case "Cash":
			if err := qtx.DeleteBankAccount(ctx, req.EmployeeID); err != nil {
				return Calculation{}, err
			}
			emp.BankAccount = nil
		case "Online":
			account := &employee.BankAccount{
				ID:           uuid.New(),
				EmployeeID:   req.EmployeeID,
				BankName:     *u.BankName,
				AccountTitle: *u.AccountTitle,
				AccountNo:    *u.AccountNo,
				BranchCode:   *u.BranchCode,
			}
			if err := qtx.UpsertBankAccount(ctx, account); err != nil {
				return Calculation{}, err
			}
			emp.BankAccount = account
		}
	}

	raw, err := s.calculateFor(ctx, qtx, req.EmployeeID, req.Month, req.Year, false)
	if err != nil {
		return Calculation{}, err
	}

	deltas := deltasFrom(u.DerivedFieldUpdates, raw)
	merged := deltas
	existing, err := qtx.FindAdjustment(ctx, req.EmployeeID, req.Month, req.Year)
	switch {
	case err == nil:
		merged = existing.Deltas().Merge(deltas)
		if merged.IsEmpty() {
			if err := qtx.DeleteAdjustment(ctx, req.EmployeeID, req.Month, req.Year); err != nil {
				return Calculation{}, err
			}
		} else {
			existing.SetDeltas(merged)
			if err := qtx.SaveAdjustment(ctx, existing); err != nil {
				return Calculation{}, err
			}
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		if !merged.IsEmpty() {
			adj := &PayrollAdjustment{
				ID:         uuid.New(),
				EmployeeID: req.EmployeeID,
				Month:      req.Month,
				Year:       req.Year,
			}
			adj.SetDeltas(merged)
			if err := qtx.SaveAdjustment(ctx, adj); err != nil {
				return Calculation{}, err
			}
		}
	default:
		return Calculation{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("payroll edit commit failed", zap.String("request_id", rid), zap.Error(err))
		return Calculation{}, err
	}

	s.logger.Info("payroll edit applied",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
	)

	if merged.IsEmpty() {
		return raw, nil
	}
	return merged.Apply(raw), nil
}

// GenerateSlip snapshots the current calculation into a salary slip.
// Regenerating for the same employee and period overwrites the same
// row rather than creating a duplicate.
func (s *service) GenerateSlip(ctx context.Context, req GenerateSlipRequest) (SlipResponse, error) {
	if !validPeriod(req.Month, req.Year) {
		return SlipResponse{}, payrollerrors.ErrInvalidPeriod
	}

	rid := contextutil.GetRequestID(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("generate slip begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return SlipResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	calc, err := s.calculateFor(ctx, qtx, req.EmployeeID, req.Month, req.Year, true)
	if err != nil {
		return SlipResponse{}, err
	}

	slip := &SalarySlip{
		ID:         uuid.New(),
		EmployeeID: req.EmployeeID,
		Month:      req.Month,
		Year:       req.Year,
		Status:     SlipStatusUnpaid,
	}
	if existing, err := qtx.FindSlip(ctx, req.EmployeeID, req.Month, req.Year); err == nil {
		slip.ID = existing.ID
		slip.Status = existing.Status
		slip.CreatedAt = existing.CreatedAt
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return SlipResponse{}, err
	}

	slip.GrossSalary = calc.GrossSalary
	if calc.FuelEntitlement != nil {
		slip.FuelEntitlement = *calc.FuelEntitlement
	}
	slip.FuelAmount = calc.FuelAmount
	slip.CommissionOrAdditional = calc.CommissionAmount
	slip.OvertimeHours = calc.OvertimeHours
	slip.OvertimeAmount = calc.OvertimeAmount
	slip.SundayCount = calc.SundayCount
	slip.SundayAmount = calc.SundayAmount
	slip.SundayFuel = calc.SundayFuel
	slip.LeaveCount = calc.LeaveCount
	slip.HalfDayCount = calc.HalfDayCount
	slip.LeaveDeduction = calc.LeaveDeduction
	slip.HalfDayDeduction = calc.HalfDayDeduction
	slip.LoanOrOtherDeduction = calc.LoanDeduction
	slip.Bonus = req.Bonus
	slip.BonusType = req.BonusType
	slip.NetSalary = round2(calc.NetSalary + req.Bonus)
	slip.Account = calc.Account

	if err := qtx.SaveSlip(ctx, slip); err != nil {
		s.logger.Error("generate slip persist failed",
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		return SlipResponse{}, err
	}

	if s.outbox != nil {
		event := events.SalarySlipGeneratedEvent{
			EventType:  "salary_slip_generated",
			SlipID:     slip.ID.String(),
			EmployeeID: slip.EmployeeID,
			Month:      slip.Month,
			Year:       slip.Year,
			NetSalary:  slip.NetSalary,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return SlipResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "salary_slip",
			AggregateID:   slip.ID.String(),
			EventType:     event.EventType,
			Topic:         events.SalarySlipGeneratedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("generate slip outbox persist failed",
				zap.String("slip_id", slip.ID.String()),
				zap.Error(err),
			)
			return SlipResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("generate slip commit failed", zap.String("request_id", rid), zap.Error(err))
		return SlipResponse{}, err
	}

	s.logger.Info("salary slip generated",
		zap.String("request_id", rid),
		zap.String("slip_id", slip.ID.String()),
		zap.String("employee_id", slip.EmployeeID),
		zap.Int("month", slip.Month),
		zap.Int("year", slip.Year),
	)
	return toSlipResponse(slip), nil
}

func (s *service) GetSlip(ctx context.Context, employeeID string, month, year int) (SlipResponse, error) {
	if !validPeriod(month, year) {
		return SlipResponse{}, payrollerrors.ErrInvalidPeriod
	}
	slip, err := s.repo.FindSlip(ctx, employeeID, month, year)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SlipResponse{}, payrollerrors.ErrSlipNotFound
		}
		return SlipResponse{}, err
	}
	return toSlipResponse(slip), nil
}

func (s *service) ListSlips(ctx context.Context, month, year int) ([]SlipResponse, error) {
	if !validPeriod(month, year) {
		return nil, payrollerrors.ErrInvalidPeriod
	}
	slips, err := s.repo.ListSlips(ctx, month, year)
	if err != nil {
		return nil, err
	}
	out := make([]SlipResponse, 0, len(slips))
	for i := range slips {
		out = append(out, toSlipResponse(&slips[i]))
	}
	return out, nil
}

func (s *service) RenderSlipPDF(ctx context.Context, employeeID string, month, year int) ([]byte, string, error) {
	slip, err := s.GetSlip(ctx, employeeID, month, year)
	if err != nil {
		return nil, "", err
	}
	emp, err := s.repo.FindEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", payrollerrors.ErrEmployeeNotFound
		}
		return nil, "", err
	}
	name := ""
	if emp.User != nil {
		name = emp.User.Name
	}
	pdf, err := buildSlipPDF(slip, name, emp.Designation)
	if err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("salary_slip_%s_%s_%d.pdf", employeeID, time.Month(month), year)
	return pdf, filename, nil
}

func (s *service) ExportCSV(ctx context.Context, month, year int, bankFilter string) ([]byte, string, error) {
	calcs, err := s.CalculateAll(ctx, month, year)
	if err != nil {
		return nil, "", err
	}
	if bankFilter != "" {
		filtered := calcs[:0]
		for _, c := range calcs {
			if strings.Contains(strings.ToLower(c.Account), strings.ToLower(bankFilter)) {
				filtered = append(filtered, c)
			}
		}
		calcs = filtered
	}
	if len(calcs) == 0 {
		return nil, "", payrollerrors.ErrNoPayrollData
	}
	filename := fmt.Sprintf("payroll_%s_%d.csv", time.Month(month), year)
	return buildCSV(calcs), filename, nil
}
