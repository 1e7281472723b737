package payroll

import (
	"strconv"
	"strings"
)

var csvHeaders = []string{
	"Employee ID", "Employee Name", "Designation", "Location",
	"Gross Salary", "Fuel Entitlement", "Fuel Rate", "Fuel Amount",
	"Commission Amount", "Overtime Hours", "Overtime Amount",
	"Sunday Count", "Sunday Amount", "Sunday Fuel",
	"Leave Count", "Leave Deduction", "Half Day Count", "Half Day Deduction",
	"Loan Deduction", "Net Salary", "Account",
}

func csvNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// buildCSV renders the export consumed by the finance team. Every cell
// is double-quoted, including numbers, and embedded quotes are doubled.
func buildCSV(calcs []Calculation) []byte {
	var b strings.Builder

	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
			b.WriteByte('"')
		}
		b.WriteByte('\n')
	}

	writeRow(csvHeaders)
	for _, c := range calcs {
		entitlement := 0.0
		if c.FuelEntitlement != nil {
			entitlement = *c.FuelEntitlement
		}
		writeRow([]string{
			c.ID,
			c.Name,
			c.Designation,
			c.Location,
			csvNumber(c.GrossSalary),
			csvNumber(entitlement),
			csvNumber(c.FuelRate),
			csvNumber(c.FuelAmount),
			csvNumber(c.CommissionAmount),
			csvNumber(c.OvertimeHours),
			csvNumber(c.OvertimeAmount),
			csvNumber(c.SundayCount),
			csvNumber(c.SundayAmount),
			csvNumber(c.SundayFuel),
			csvNumber(c.LeaveCount),
			csvNumber(c.LeaveDeduction),
			csvNumber(c.HalfDayCount),
			csvNumber(c.HalfDayDeduction),
			csvNumber(c.LoanDeduction),
			csvNumber(c.NetSalary),
			c.Account,
		})
	}
	return []byte(b.String())
}
