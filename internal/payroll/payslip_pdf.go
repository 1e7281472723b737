package payroll

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// buildSlipPDF renders a salary slip as a single page A4 PDF. The
// document is assembled by hand so slip downloads need no external
// rendering dependency.
func buildSlipPDF(slip SlipResponse, name, designation string) ([]byte, error) {
	period := fmt.Sprintf("%s %d", time.Month(slip.Month), slip.Year)
	money := func(v float64) string { return fmt.Sprintf("%.2f", v) }

	lines := []string{
		"Salary Slip - " + period,
		"",
		"Employee: " + slip.EmployeeID + "  " + name,
		"Designation: " + designation,
		"Account: " + slip.Account,
		"",
		"Gross Salary: " + money(slip.GrossSalary),
		"Fuel Amount: " + money(slip.FuelAmount),
		"Commission / Additional: " + money(slip.CommissionOrAdditional),
		fmt.Sprintf("Overtime: %.2f hours, %s", slip.OvertimeHours, money(slip.OvertimeAmount)),
		fmt.Sprintf("Sundays: %.0f worked, %s + %s fuel", slip.SundayCount, money(slip.SundayAmount), money(slip.SundayFuel)),
		fmt.Sprintf("Leaves: %.1f full, %.1f half", slip.LeaveCount, slip.HalfDayCount),
		"Leave Deduction: " + money(slip.LeaveDeduction),
		"Half Day Deduction: " + money(slip.HalfDayDeduction),
		"Loan / Other Deduction: " + money(slip.LoanOrOtherDeduction),
	}
	if slip.Bonus > 0 {
		bonusLabel := "Bonus"
		if slip.BonusType != nil {
			// Stored as RAMADAN or PERFORMANCE, shown as Ramadan / Performance.
			bonusLabel = "Bonus (" + cases.Title(language.English).String(strings.ToLower(*slip.BonusType)) + ")"
		}
		lines = append(lines, bonusLabel+": "+money(slip.Bonus))
	}
	lines = append(lines,
		"",
		"Net Salary: "+money(slip.NetSalary),
		"Status: "+slip.Status,
	)

	return renderTextPDF(lines)
}

func renderTextPDF(lines []string) ([]byte, error) {
	if len(lines) == 0 {
		lines = []string{"Salary Slip"}
	}

	var content strings.Builder
	content.WriteString("BT\n/F1 12 Tf\n14 TL\n50 800 Td\n")
	for i, line := range lines {
		escaped := pdfEscape(line)
		if i == 0 {
			content.WriteString(fmt.Sprintf("(%s) Tj\n", escaped))
			continue
		}
		content.WriteString(fmt.Sprintf("T* (%s) Tj\n", escaped))
	}
	content.WriteString("ET")

	stream := content.String()
	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n",
		"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>\nendobj\n",
		"4 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n",
		fmt.Sprintf("5 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(stream), stream),
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, len(objects)+1)
	offsets = append(offsets, 0)

	for _, obj := range objects {
		offsets = append(offsets, out.Len())
		out.WriteString(obj)
	}

	xrefStart := out.Len()
	out.WriteString(fmt.Sprintf("xref\n0 %d\n", len(offsets)))
	out.WriteString("0000000000 65535 f \n")
	for i := 1; i < len(offsets); i++ {
		out.WriteString(fmt.Sprintf("%010d 00000 n \n", offsets[i]))
	}
	out.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(offsets), xrefStart))

	return out.Bytes(), nil
}

func pdfEscape(v string) string {
	replacer := strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)")
	return replacer.Replace(v)
}
