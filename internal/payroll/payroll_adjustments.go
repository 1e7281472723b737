package payroll

// Adjustments is a sparse set of deltas stored against the raw payroll
// figures for one employee and month. A nil field means no adjustment
// for that figure.
type Adjustments struct {
	OvertimeHours    *float64 `json:"overtime_hours,omitempty"`
	OvertimeAmount   *float64 `json:"overtime_amount,omitempty"`
	SundayCount      *float64 `json:"sunday_count,omitempty"`
	SundayAmount     *float64 `json:"sunday_amount,omitempty"`
	SundayFuel       *float64 `json:"sunday_fuel,omitempty"`
	LeaveCount       *float64 `json:"leave_count,omitempty"`
	LeaveDeduction   *float64 `json:"leave_deduction,omitempty"`
	HalfDayCount     *float64 `json:"half_day_count,omitempty"`
	HalfDayDeduction *float64 `json:"half_day_deduction,omitempty"`
	CommissionAmount *float64 `json:"commission_amount,omitempty"`
	LoanDeduction    *float64 `json:"loan_deduction,omitempty"`
}

func (a Adjustments) fields() []*float64 {
	return []*float64{
		a.OvertimeHours, a.OvertimeAmount,
		a.SundayCount, a.SundayAmount, a.SundayFuel,
		a.LeaveCount, a.LeaveDeduction,
		a.HalfDayCount, a.HalfDayDeduction,
		a.CommissionAmount, a.LoanDeduction,
	}
}

// IsEmpty reports whether no field carries a delta.
func (a Adjustments) IsEmpty() bool {
	for _, f := range a.fields() {
		if f != nil {
			return false
		}
	}
	return true
}

func sumDelta(existing, incoming *float64) *float64 {
	if incoming == nil {
		return existing
	}
	total := *incoming
	if existing != nil {
		total += *existing
	}
	if total == 0 {
		return nil
	}
	return &total
}

// Merge sums the incoming deltas into the existing ones field by field.
// Fields that net to exactly zero are dropped.
func (a Adjustments) Merge(in Adjustments) Adjustments {
	return Adjustments{
		OvertimeHours:    sumDelta(a.OvertimeHours, in.OvertimeHours),
		OvertimeAmount:   sumDelta(a.OvertimeAmount, in.OvertimeAmount),
		SundayCount:      sumDelta(a.SundayCount, in.SundayCount),
		SundayAmount:     sumDelta(a.SundayAmount, in.SundayAmount),
		SundayFuel:       sumDelta(a.SundayFuel, in.SundayFuel),
		LeaveCount:       sumDelta(a.LeaveCount, in.LeaveCount),
		LeaveDeduction:   sumDelta(a.LeaveDeduction, in.LeaveDeduction),
		HalfDayCount:     sumDelta(a.HalfDayCount, in.HalfDayCount),
		HalfDayDeduction: sumDelta(a.HalfDayDeduction, in.HalfDayDeduction),
		CommissionAmount: sumDelta(a.CommissionAmount, in.CommissionAmount),
		LoanDeduction:    sumDelta(a.LoanDeduction, in.LoanDeduction),
	}
}

func addDelta(base float64, delta *float64) float64 {
	if delta == nil {
		return base
	}
	return base + *delta
}

// Apply folds the deltas into a raw calculation. Count deltas also move
// the amounts they drive, priced at the calculation's daily and hourly
// rates, on top of any direct amount deltas.
func (a Adjustments) Apply(calc Calculation) Calculation {
	dailyRate := calc.DailyRate()
	hourlyRate := calc.HourlyRate()

	overtimeAmount := addDelta(calc.OvertimeAmount, a.OvertimeAmount)
	if a.OvertimeHours != nil {
		overtimeAmount += *a.OvertimeHours * hourlyRate
	}
	sundayAmount := addDelta(calc.SundayAmount, a.SundayAmount)
	if a.SundayCount != nil {
		sundayAmount += *a.SundayCount * dailyRate
	}
	leaveDeduction := addDelta(calc.LeaveDeduction, a.LeaveDeduction)
	if a.LeaveCount != nil {
		leaveDeduction += *a.LeaveCount * dailyRate
	}
	halfDayDeduction := addDelta(calc.HalfDayDeduction, a.HalfDayDeduction)
	if a.HalfDayCount != nil {
		halfDayDeduction += *a.HalfDayCount * dailyRate / 2
	}

	calc.OvertimeHours = round2(addDelta(calc.OvertimeHours, a.OvertimeHours))
	calc.OvertimeAmount = round2(overtimeAmount)
	calc.SundayCount = addDelta(calc.SundayCount, a.SundayCount)
	calc.SundayAmount = round2(sundayAmount)
	calc.SundayFuel = round2(addDelta(calc.SundayFuel, a.SundayFuel))
	calc.LeaveCount = addDelta(calc.LeaveCount, a.LeaveCount)
	calc.LeaveDeduction = round2(leaveDeduction)
	calc.HalfDayCount = addDelta(calc.HalfDayCount, a.HalfDayCount)
	calc.HalfDayDeduction = round2(halfDayDeduction)
	calc.CommissionAmount = round2(addDelta(calc.CommissionAmount, a.CommissionAmount))
	calc.LoanDeduction = round2(addDelta(calc.LoanDeduction, a.LoanDeduction))

	calc.NetSalary = netOf(calc)
	return calc
}

func deltaFor(submitted *float64, raw float64) *float64 {
	if submitted == nil {
		return nil
	}
	d := *submitted - raw
	if d == 0 {
		return nil
	}
	return &d
}

// deltasFrom turns absolute figures submitted by an editor into deltas
// against the raw calculation. Fields equal to the raw value produce
// no delta.
func deltasFrom(req DerivedFieldUpdates, raw Calculation) Adjustments {
	return Adjustments{
		OvertimeHours:    deltaFor(req.OvertimeHours, raw.OvertimeHours),
		OvertimeAmount:   deltaFor(req.OvertimeAmount, raw.OvertimeAmount),
		SundayCount:      deltaFor(req.SundayCount, raw.SundayCount),
		SundayAmount:     deltaFor(req.SundayAmount, raw.SundayAmount),
		SundayFuel:       deltaFor(req.SundayFuel, raw.SundayFuel),
		LeaveCount:       deltaFor(req.LeaveCount, raw.LeaveCount),
		LeaveDeduction:   deltaFor(req.LeaveDeduction, raw.LeaveDeduction),
		HalfDayCount:     deltaFor(req.HalfDayCount, raw.HalfDayCount),
		HalfDayDeduction: deltaFor(req.HalfDayDeduction, raw.HalfDayDeduction),
		CommissionAmount: deltaFor(req.CommissionAmount, raw.CommissionAmount),
		LoanDeduction:    deltaFor(req.LoanDeduction, raw.LoanDeduction),
	}
}
