package payroll

import "time"

// DerivedFieldUpdates carries absolute values for derived payroll
// figures submitted by an editor. The service converts them into
// deltas against the raw calculation before storing.
type DerivedFieldUpdates struct {
	OvertimeHours    *float64 `json:"overtime_hours"`
	OvertimeAmount   *float64 `json:"overtime_amount"`
	SundayCount      *float64 `json:"sunday_count"`
	SundayAmount     *float64 `json:"sunday_amount"`
	SundayFuel       *float64 `json:"sunday_fuel"`
	LeaveCount       *float64 `json:"leave_count"`
	LeaveDeduction   *float64 `json:"leave_deduction"`
	HalfDayCount     *float64 `json:"half_day_count"`
	HalfDayDeduction *float64 `json:"half_day_deduction"`
	CommissionAmount *float64 `json:"commission_amount"`
	LoanDeduction    *float64 `json:"loan_deduction"`
}

// PayrollUpdates groups everything an editor may change on the payroll
// screen: identity fields, salary fields, bank details and derived
// figures.
type PayrollUpdates struct {
	Name            *string  `json:"name"`
	Designation     *string  `json:"designation"`
	Location        *string  `json:"location"`
	GrossSalary     *float64 `json:"gross_salary" binding:"omitempty,gte=0"`
	FuelEntitlement *float64 `json:"fuel_entitlement" binding:"omitempty,gte=0"`
	FuelAmount      *float64 `json:"fuel_amount" binding:"omitempty,gte=0"`

	ModeOfPayment *string `json:"mode_of_payment" binding:"omitempty,oneof=Cash Online"`
	BankName      *string `json:"bank_name"`
	AccountTitle  *string `json:"account_title"`
	AccountNo     *string `json:"account_no"`
	BranchCode    *string `json:"branch_code"`

	DerivedFieldUpdates
}

type EditPayrollRequest struct {
	EmployeeID string         `json:"employee_id" binding:"required"`
	Month      int            `json:"month" binding:"required"`
	Year       int            `json:"year" binding:"required"`
	Updates    PayrollUpdates `json:"updates" binding:"required"`
}

type GenerateSlipRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required"`
	Month      int     `json:"month" binding:"required"`
	Year       int     `json:"year" binding:"required"`
	Bonus      float64 `json:"bonus" binding:"omitempty,gte=0"`
	BonusType  *string `json:"bonus_type" binding:"omitempty,oneof=RAMADAN PERFORMANCE"`
}

type SlipResponse struct {
	ID                     string  `json:"id"`
	EmployeeID             string  `json:"employee_id"`
	Month                  int     `json:"month"`
	Year                   int     `json:"year"`
	GrossSalary            float64 `json:"gross_salary"`
	FuelEntitlement        float64 `json:"fuel_entitlement"`
	FuelAmount             float64 `json:"fuel_amount"`
	CommissionOrAdditional float64 `json:"commission_or_additional"`
	OvertimeHours          float64 `json:"overtime_hours"`
	OvertimeAmount         float64 `json:"overtime_amount"`
	SundayCount            float64 `json:"sunday_count"`
	SundayAmount           float64 `json:"sunday_amount"`
	SundayFuel             float64 `json:"sunday_fuel"`
	LeaveCount             float64 `json:"leave_count"`
	HalfDayCount           float64 `json:"half_day_count"`
	LeaveDeduction         float64 `json:"leave_deduction"`
	HalfDayDeduction       float64 `json:"half_day_deduction"`
	LoanOrOtherDeduction   float64 `json:"loan_or_other_deduction"`
	Bonus                  float64 `json:"bonus"`
	BonusType              *string `json:"bonus_type"`
	NetSalary              float64 `json:"net_salary"`
	Account                string  `json:"account"`
	Status                 string  `json:"status"`
	CreatedAt              string  `json:"created_at"`
	UpdatedAt              string  `json:"updated_at"`
}

func toSlipResponse(s *SalarySlip) SlipResponse {
	return SlipResponse{
		ID:                     s.ID.String(),
		EmployeeID:             s.EmployeeID,
		Month:                  s.Month,
		Year:                   s.Year,
		GrossSalary:            s.GrossSalary,
		FuelEntitlement:        s.FuelEntitlement,
		FuelAmount:             s.FuelAmount,
		CommissionOrAdditional: s.CommissionOrAdditional,
		OvertimeHours:          s.OvertimeHours,
		OvertimeAmount:         s.OvertimeAmount,
		SundayCount:            s.SundayCount,
		SundayAmount:           s.SundayAmount,
		SundayFuel:             s.SundayFuel,
		LeaveCount:             s.LeaveCount,
		HalfDayCount:           s.HalfDayCount,
		LeaveDeduction:         s.LeaveDeduction,
		HalfDayDeduction:       s.HalfDayDeduction,
		LoanOrOtherDeduction:   s.LoanOrOtherDeduction,
		Bonus:                  s.Bonus,
		BonusType:              s.BonusType,
		NetSalary:              s.NetSalary,
		Account:                s.Account,
		Status:                 s.Status,
		CreatedAt:              s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:              s.UpdatedAt.Format(time.RFC3339),
	}
}
