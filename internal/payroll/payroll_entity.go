package payroll

import (
	"time"

	"github.com/google/uuid"
)

// PayrollAdjustment stores the manual deltas applied on top of the raw
// payroll calculation for one employee and month. Columns are nullable;
// a NULL column means that figure is unadjusted.
type PayrollAdjustment struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID string    `gorm:"column:employee_id;type:varchar(16);not null;uniqueIndex:uq_payroll_adjustment_period,priority:1"`
	Month      int       `gorm:"column:month;not null;uniqueIndex:uq_payroll_adjustment_period,priority:2"`
	Year       int       `gorm:"column:year;not null;uniqueIndex:uq_payroll_adjustment_period,priority:3"`

	OvertimeHours    *float64 `gorm:"column:overtime_hours"`
	OvertimeAmount   *float64 `gorm:"column:overtime_amount"`
	SundayCount      *float64 `gorm:"column:sunday_count"`
	SundayAmount     *float64 `gorm:"column:sunday_amount"`
	SundayFuel       *float64 `gorm:"column:sunday_fuel"`
	LeaveCount       *float64 `gorm:"column:leave_count"`
	LeaveDeduction   *float64 `gorm:"column:leave_deduction"`
	HalfDayCount     *float64 `gorm:"column:half_day_count"`
	HalfDayDeduction *float64 `gorm:"column:half_day_deduction"`
	CommissionAmount *float64 `gorm:"column:commission_amount"`
	LoanDeduction    *float64 `gorm:"column:loan_deduction"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (PayrollAdjustment) TableName() string {
	return "payroll_adjustments"
}

// Deltas returns the stored columns as an Adjustments value.
func (pa PayrollAdjustment) Deltas() Adjustments {
	return Adjustments{
		OvertimeHours:    pa.OvertimeHours,
		OvertimeAmount:   pa.OvertimeAmount,
		SundayCount:      pa.SundayCount,
		SundayAmount:     pa.SundayAmount,
		SundayFuel:       pa.SundayFuel,
		LeaveCount:       pa.LeaveCount,
		LeaveDeduction:   pa.LeaveDeduction,
		HalfDayCount:     pa.HalfDayCount,
		HalfDayDeduction: pa.HalfDayDeduction,
		CommissionAmount: pa.CommissionAmount,
		LoanDeduction:    pa.LoanDeduction,
	}
}

// SetDeltas overwrites the stored columns from an Adjustments value.
func (pa *PayrollAdjustment) SetDeltas(a Adjustments) {
	pa.OvertimeHours = a.OvertimeHours
	pa.OvertimeAmount = a.OvertimeAmount
	pa.SundayCount = a.SundayCount
	pa.SundayAmount = a.SundayAmount
	pa.SundayFuel = a.SundayFuel
	pa.LeaveCount = a.LeaveCount
	pa.LeaveDeduction = a.LeaveDeduction
	pa.HalfDayCount = a.HalfDayCount
	pa.HalfDayDeduction = a.HalfDayDeduction
	pa.CommissionAmount = a.CommissionAmount
	pa.LoanDeduction = a.LoanDeduction
}

const (
	BonusTypeRamadan     = "RAMADAN"
	BonusTypePerformance = "PERFORMANCE"

	SlipStatusUnpaid = "UNPAID"
	SlipStatusPaid   = "PAID"
)

// SalarySlip is a persisted snapshot of the payroll figures at the
// moment a slip was generated. Regenerating for the same period
// overwrites the same row.
type SalarySlip struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeID string    `gorm:"column:employee_id;type:varchar(16);not null;uniqueIndex:uq_salary_slip_period,priority:1"`
	Month      int       `gorm:"column:month;not null;uniqueIndex:uq_salary_slip_period,priority:2"`
	Year       int       `gorm:"column:year;not null;uniqueIndex:uq_salary_slip_period,priority:3"`

	GrossSalary            float64 `gorm:"column:gross_salary;not null"`
	FuelEntitlement        float64 `gorm:"column:fuel_entitlement;not null;default:0"`
	FuelAmount             float64 `gorm:"column:fuel_amount;not null;default:0"`
	CommissionOrAdditional float64 `gorm:"column:commission_or_additional;not null;default:0"`
	OvertimeHours          float64 `gorm:"column:overtime_hours;not null;default:0"`
	OvertimeAmount         float64 `gorm:"column:overtime_amount;not null;default:0"`
	SundayCount            float64 `gorm:"column:sunday_count;not null;default:0"`
	SundayAmount           float64 `gorm:"column:sunday_amount;not null;default:0"`
	SundayFuel             float64 `gorm:"column:sunday_fuel;not null;default:0"`
	LeaveCount             float64 `gorm:"column:leave_count;not null;default:0"`
	HalfDayCount           float64 `gorm:"column:half_day_count;not null;default:0"`
	LeaveDeduction         float64 `gorm:"column:leave_deduction;not null;default:0"`
	HalfDayDeduction       float64 `gorm:"column:half_day_deduction;not null;default:0"`
	LoanOrOtherDeduction   float64 `gorm:"column:loan_or_other_deduction;not null;default:0"`
	Bonus                  float64 `gorm:"column:bonus;not null;default:0"`
	BonusType              *string `gorm:"column:bonus_type;type:varchar(20)"`
	NetSalary              float64 `gorm:"column:net_salary;not null"`
	Account                string  `gorm:"column:account;type:varchar(100);not null"`
	Status                 string  `gorm:"column:status;type:varchar(10);not null;default:UNPAID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SalarySlip) TableName() string {
	return "salary_slips"
}
