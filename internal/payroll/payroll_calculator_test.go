package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/attendance"
	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/employee"
	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/leave"
	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/salary"
	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/user"
)

func floatPtr(v float64) *float64 { return &v }

func strPtr(v string) *string { return &v }

func testEmployee() *employee.Employee {
	return &employee.Employee{
		ID:          "E0126001",
		Designation: "Accountant",
		Location:    "Karachi",
		User:        &user.User{Name: "Ayesha Khan"},
	}
}

func TestComputeRawEmptyMonth(t *testing.T) {
	sal := &salary.Salary{GrossSalary: 60000, FuelAllowance: 5000}

	calc := computeRaw(testEmployee(), sal, nil, nil, 300)

	assert.Equal(t, 60000.0, calc.GrossSalary)
	assert.Equal(t, 5000.0, calc.FuelAmount)
	assert.Equal(t, 65000.0, calc.NetSalary)
	assert.Equal(t, "Cash", calc.Account)
	assert.Equal(t, "Ayesha Khan", calc.Name)
}

func TestComputeRawFuelEntitlementOverridesAllowance(t *testing.T) {
	sal := &salary.Salary{
		GrossSalary:     60000,
		FuelEntitlement: floatPtr(50),
		FuelAllowance:   5000,
	}

	calc := computeRaw(testEmployee(), sal, nil, nil, 300)

	assert.Equal(t, 15000.0, calc.FuelAmount)
	assert.Equal(t, 75000.0, calc.NetSalary)
}

func TestComputeRawRates(t *testing.T) {
	sal := &salary.Salary{GrossSalary: 73000}
	calc := computeRaw(testEmployee(), sal, nil, nil, 300)

	assert.InDelta(t, 2400.0, calc.DailyRate(), 0.001)
	assert.InDelta(t, 300.0, calc.HourlyRate(), 0.001)
}

func TestComputeRawSundayAndLeave(t *testing.T) {
	sal := &salary.Salary{GrossSalary: 73000}
	// 2026-01-04 is a Sunday.
	sunday := time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC)
	records := []attendance.Attendance{
		{Date: sunday, Status: attendance.StatusPresent},
	}
	leaves := []leave.Leave{
		{LeaveType: leave.TypeFullDay, Status: leave.StatusApproved},
		{LeaveType: leave.TypeHalfDay, Status: leave.StatusApproved},
	}

	calc := computeRaw(testEmployee(), sal, records, leaves, 300)

	assert.Equal(t, 1.0, calc.SundayCount)
	assert.Equal(t, 2400.0, calc.SundayAmount)
	assert.Equal(t, 300.0, calc.SundayFuel)
	assert.Equal(t, 1.0, calc.LeaveCount)
	assert.Equal(t, 2400.0, calc.LeaveDeduction)
	assert.Equal(t, 1.0, calc.HalfDayCount)
	assert.Equal(t, 1200.0, calc.HalfDayDeduction)

	// 73000 + 300 + 2400 - 2400 - 1200
	assert.Equal(t, 72100.0, calc.NetSalary)
}

func TestComputeRawOvertime(t *testing.T) {
	sal := &salary.Salary{GrossSalary: 73000}
	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	records := []attendance.Attendance{
		{Date: monday, Status: attendance.StatusPresent, WorkingHours: strPtr("10.50")},
		{Date: monday.AddDate(0, 0, 1), Status: attendance.StatusPresent, WorkingHours: strPtr("8.00")},
		{Date: monday.AddDate(0, 0, 2), Status: attendance.StatusPresent, WorkingHours: strPtr("full day")},
	}

	calc := computeRaw(testEmployee(), sal, records, nil, 300)

	assert.Equal(t, 2.5, calc.OvertimeHours)
	assert.Equal(t, 750.0, calc.OvertimeAmount)
}

func TestComputeRawLateArrivalCutoff(t *testing.T) {
	sal := &salary.Salary{GrossSalary: 73000}
	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	atCutoff := time.Date(2026, 1, 5, 10, 15, 0, 0, time.UTC)
	pastCutoff := time.Date(2026, 1, 6, 10, 16, 0, 0, time.UTC)
	records := []attendance.Attendance{
		{Date: monday, Status: attendance.StatusPresent, InTime: &atCutoff},
		{Date: monday.AddDate(0, 0, 1), Status: attendance.StatusLate, InTime: &pastCutoff},
	}

	calc := computeRaw(testEmployee(), sal, records, nil, 300)

	assert.Equal(t, 1.0, calc.HalfDayCount)
	assert.Equal(t, 1200.0, calc.HalfDayDeduction)
}

func TestComputeRawRoundsFuelFigures(t *testing.T) {
	sal := &salary.Salary{
		GrossSalary:     60000,
		FuelEntitlement: floatPtr(10.33),
	}
	// 2026-01-04 is a Sunday.
	sunday := time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC)
	records := []attendance.Attendance{
		{Date: sunday, Status: attendance.StatusPresent},
	}

	calc := computeRaw(testEmployee(), sal, records, nil, 287.556)

	// 10.33 * 287.556 = 2970.45348
	assert.Equal(t, 2970.45, calc.FuelAmount)
	// 1 * 287.556
	assert.Equal(t, 287.56, calc.SundayFuel)
}

func TestComputeRawAccountFromBank(t *testing.T) {
	emp := testEmployee()
	emp.BankAccount = &employee.BankAccount{BankName: "Habib Bank"}
	sal := &salary.Salary{GrossSalary: 60000}

	calc := computeRaw(emp, sal, nil, nil, 300)

	assert.Equal(t, "Habib Bank", calc.Account)
}

func TestComputeRawIgnoresAbsences(t *testing.T) {
	sal := &salary.Salary{GrossSalary: 73000}
	sunday := time.Date(2026, 1, 4, 0, 0, 0, 0, time.UTC)
	records := []attendance.Attendance{
		{Date: sunday, Status: attendance.StatusAbsent, WorkingHours: strPtr("10.00")},
	}

	calc := computeRaw(testEmployee(), sal, records, nil, 300)

	assert.Zero(t, calc.SundayCount)
	assert.Zero(t, calc.OvertimeHours)
}
