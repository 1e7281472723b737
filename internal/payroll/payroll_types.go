package payroll

// Calculation is the fully derived payroll figure set for one employee
// and one month. Counts are float64 because manual adjustments may push
// them to fractional values.
type Calculation struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Designation      string   `json:"designation"`
	Location         string   `json:"location"`
	GrossSalary      float64  `json:"gross_salary"`
	FuelEntitlement  *float64 `json:"fuel_entitlement"`
	FuelRate         float64  `json:"fuel_rate"`
	FuelAmount       float64  `json:"fuel_amount"`
	CommissionAmount float64  `json:"commission_amount"`
	OvertimeHours    float64  `json:"overtime_hours"`
	OvertimeAmount   float64  `json:"overtime_amount"`
	SundayCount      float64  `json:"sunday_count"`
	SundayAmount     float64  `json:"sunday_amount"`
	SundayFuel       float64  `json:"sunday_fuel"`
	LeaveCount       float64  `json:"leave_count"`
	LeaveDeduction   float64  `json:"leave_deduction"`
	HalfDayCount     float64  `json:"half_day_count"`
	HalfDayDeduction float64  `json:"half_day_deduction"`
	LoanDeduction    float64  `json:"loan_deduction"`
	NetSalary        float64  `json:"net_salary"`
	Account          string   `json:"account"`
}

// DailyRate annualises the gross salary and spreads it over 365 days.
func (c Calculation) DailyRate() float64 {
	return c.GrossSalary * 12 / 365
}

// HourlyRate assumes an eight hour working day.
func (c Calculation) HourlyRate() float64 {
	return c.DailyRate() / 8
}
