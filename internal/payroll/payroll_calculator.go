package payroll

import (
	"math"
	"strconv"
	"time"

	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/attendance"
	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/employee"
	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/leave"
	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/salary"
)

const (
	standardWorkingHours = 8.0
	accountFallback      = "Cash"
)

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// lateAfterCutoff reports whether an arrival time falls strictly after
// the 10:15 half-day cutoff.
func lateAfterCutoff(t time.Time) bool {
	return t.Hour() > 10 || (t.Hour() == 10 && t.Minute() > 15)
}

func worked(status string) bool {
	return status == attendance.StatusPresent || status == attendance.StatusLate
}

// computeRaw derives the payroll figures for one employee from salary,
// attendance and approved leave data alone, before any manual
// adjustments are applied.
func computeRaw(emp *employee.Employee, sal *salary.Salary, records []attendance.Attendance, leaves []leave.Leave, fuelRate float64) Calculation {
	calc := Calculation{
		ID:              emp.ID,
		Designation:     emp.Designation,
		Location:        emp.Location,
		GrossSalary:     sal.GrossSalary,
		FuelEntitlement: sal.FuelEntitlement,
		FuelRate:        fuelRate,
		Account:         accountFallback,
	}
	if emp.User != nil {
		calc.Name = emp.User.Name
	}
	if emp.BankAccount != nil && emp.BankAccount.BankName != "" {
		calc.Account = emp.BankAccount.BankName
	}

	if sal.FuelEntitlement != nil {
		calc.FuelAmount = round2(*sal.FuelEntitlement * fuelRate)
	} else {
		calc.FuelAmount = round2(sal.FuelAllowance)
	}

	dailyRate := calc.DailyRate()
	hourlyRate := calc.HourlyRate()

	for _, rec := range records {
		if !worked(rec.Status) {
			continue
		}
		if rec.WorkingHours != nil {
			if hours, err := strconv.ParseFloat(*rec.WorkingHours, 64); err == nil && hours > standardWorkingHours {
				calc.OvertimeHours += hours - standardWorkingHours
			}
		}
		if rec.Date.Weekday() == time.Sunday {
			calc.SundayCount++
		}
		if rec.InTime != nil && lateAfterCutoff(*rec.InTime) {
			calc.HalfDayCount++
		}
	}

	for _, lv := range leaves {
		switch lv.LeaveType {
		case leave.TypeFullDay:
			calc.LeaveCount++
		case leave.TypeHalfDay:
			calc.HalfDayCount++
		}
	}

	calc.OvertimeHours = round2(calc.OvertimeHours)
	calc.OvertimeAmount = round2(calc.OvertimeHours * hourlyRate)
	calc.SundayAmount = round2(calc.SundayCount * dailyRate)
	calc.SundayFuel = round2(calc.SundayCount * fuelRate)
	calc.LeaveDeduction = round2(calc.LeaveCount * dailyRate)
	calc.HalfDayDeduction = round2(calc.HalfDayCount * dailyRate / 2)

	calc.NetSalary = netOf(calc)
	return calc
}

func netOf(c Calculation) float64 {
	return round2(c.GrossSalary +
		c.FuelAmount +
		c.SundayFuel +
		c.CommissionAmount +
		c.OvertimeAmount +
		c.SundayAmount -
		c.LeaveDeduction -
		c.HalfDayDeduction -
		c.LoanDeduction)
}
