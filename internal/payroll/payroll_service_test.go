package payroll_test

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/attendance"
	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/employee"
	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/leave"
	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/payroll"
	payrollerrors "github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/payroll/errors"
	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/salary"
	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/user"
)

type fakePayrollRepository struct {
	employees   map[string]*employee.Employee
	salaries    map[string]*salary.Salary
	attendance  []attendance.Attendance
	leaves      []leave.Leave
	adjustments map[string]*payroll.PayrollAdjustment
	slips       map[string]*payroll.SalarySlip

	deletedBankAccounts []string
	upsertedAccounts    []*employee.BankAccount
	userNames           map[string]string
}

func newFakePayrollRepository() *fakePayrollRepository {
	return &fakePayrollRepository{
		employees:   map[string]*employee.Employee{},
		salaries:    map[string]*salary.Salary{},
		adjustments: map[string]*payroll.PayrollAdjustment{},
		slips:       map[string]*payroll.SalarySlip{},
		userNames:   map[string]string{},
	}
}

func periodKey(employeeID string, month, year int) string {
	return fmt.Sprintf("%s|%d|%d", employeeID, month, year)
}

func (f *fakePayrollRepository) WithTx(tx *sql.Tx) payroll.Repository { return f }

func (f *fakePayrollRepository) FindEmployee(ctx context.Context, employeeID string) (*employee.Employee, error) {
	emp, ok := f.employees[employeeID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return emp, nil
}

func (f *fakePayrollRepository) FindActiveEmployees(ctx context.Context) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		out = append(out, *emp)
	}
	return out, nil
}

func (f *fakePayrollRepository) FindSalary(ctx context.Context, employeeID string) (*salary.Salary, error) {
	sal, ok := f.salaries[employeeID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return sal, nil
}

func (f *fakePayrollRepository) FindAttendance(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	return f.attendance, nil
}

func (f *fakePayrollRepository) FindApprovedLeaves(ctx context.Context, employeeID string, from, to time.Time) ([]leave.Leave, error) {
	return f.leaves, nil
}

func (f *fakePayrollRepository) FindAdjustment(ctx context.Context, employeeID string, month, year int) (*payroll.PayrollAdjustment, error) {
	adj, ok := f.adjustments[periodKey(employeeID, month, year)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *adj
	return &copied, nil
}

func (f *fakePayrollRepository) SaveAdjustment(ctx context.Context, adj *payroll.PayrollAdjustment) error {
	f.adjustments[periodKey(adj.EmployeeID, adj.Month, adj.Year)] = adj
	return nil
}

func (f *fakePayrollRepository) DeleteAdjustment(ctx context.Context, employeeID string, month, year int) error {
	delete(f.adjustments, periodKey(employeeID, month, year))
	return nil
}

func (f *fakePayrollRepository) UpdateUserName(ctx context.Context, userID string, name string) error {
	f.userNames[userID] = name
	return nil
}

func (f *fakePayrollRepository) UpdateEmployee(ctx context.Context, emp *employee.Employee) error {
	f.employees[emp.ID] = emp
	return nil
}

func (f *fakePayrollRepository) UpdateSalary(ctx context.Context, sal *salary.Salary) error {
	f.salaries[sal.EmployeeID] = sal
	return nil
}

func (f *fakePayrollRepository) UpsertBankAccount(ctx context.Context, account *employee.BankAccount) error {
	f.upsertedAccounts = append(f.upsertedAccounts, account)
	if emp, ok := f.employees[account.EmployeeID]; ok {
		emp.BankAccount = account
	}
	return nil
}

func (f *fakePayrollRepository) DeleteBankAccount(ctx context.Context, employeeID string) error {
	f.deletedBankAccounts = append(f.deletedBankAccounts, employeeID)
	if emp, ok := f.employees[employeeID]; ok {
		emp.BankAccount = nil
	}
	return nil
}

func (f *fakePayrollRepository) SaveSlip(ctx context.Context, slip *payroll.SalarySlip) error {
	f.slips[periodKey(slip.EmployeeID, slip.Month, slip.Year)] = slip
	return nil
}

func (f *fakePayrollRepository) FindSlip(ctx context.Context, employeeID string, month, year int) (*payroll.SalarySlip, error) {
	slip, ok := f.slips[periodKey(employeeID, month, year)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *slip
	return &copied, nil
}

func (f *fakePayrollRepository) ListSlips(ctx context.Context, month, year int) ([]payroll.SalarySlip, error) {
	var out []payroll.SalarySlip
	for _, slip := range f.slips {
		if slip.Month == month && slip.Year == year {
			out = append(out, *slip)
		}
	}
	return out, nil
}

type fakeRates struct{ rate float64 }

func (f fakeRates) FuelRate(ctx context.Context) float64 { return f.rate }

func floatPtr(v float64) *float64 { return &v }

func strPtr(v string) *string { return &v }

func seedEmployee(repo *fakePayrollRepository, gross float64) *employee.Employee {
	emp := &employee.Employee{
		ID:          "E0126001",
		UserID:      uuid.New(),
		Designation: "Accountant",
		Location:    "Karachi",
		User:        &user.User{Name: "Ayesha Khan"},
	}
	repo.employees[emp.ID] = emp
	repo.salaries[emp.ID] = &salary.Salary{
		ID:          uuid.New(),
		EmployeeID:  emp.ID,
		GrossSalary: gross,
	}
	return emp
}

func setupPayrollService(t *testing.T) (*fakePayrollRepository, sqlmock.Sqlmock, payroll.Service) {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := newFakePayrollRepository()
	svc := payroll.NewService(db, repo, fakeRates{rate: 300}, nil)
	return repo, sqlMock, svc
}

func TestCalculateRejectsInvalidPeriod(t *testing.T) {
	_, _, svc := setupPayrollService(t)

	for _, period := range []struct{ month, year int }{
		{0, 2026}, {13, 2026}, {5, 1999}, {5, 10000},
	} {
		_, err := svc.Calculate(context.Background(), "E0126001", period.month, period.year)
		assert.ErrorIs(t, err, payrollerrors.ErrInvalidPeriod)
	}
}

func TestCalculateUnknownEmployee(t *testing.T) {
	_, _, svc := setupPayrollService(t)

	_, err := svc.Calculate(context.Background(), "E9999999", 1, 2026)
	assert.ErrorIs(t, err, payrollerrors.ErrEmployeeNotFound)
}

func TestCalculateEmptyMonth(t *testing.T) {
	repo, _, svc := setupPayrollService(t)
	emp := seedEmployee(repo, 60000)
	repo.salaries[emp.ID].FuelAllowance = 5000

	calc, err := svc.Calculate(context.Background(), emp.ID, 1, 2026)
	assert.NoError(t, err)
	assert.Equal(t, 65000.0, calc.NetSalary)
	assert.Equal(t, "Cash", calc.Account)
}

func TestCalculateAppliesStoredAdjustments(t *testing.T) {
	repo, _, svc := setupPayrollService(t)
	emp := seedEmployee(repo, 73000)

	adj := &payroll.PayrollAdjustment{
		ID:         uuid.New(),
		EmployeeID: emp.ID,
		Month:      1,
		Year:       2026,
	}
	adj.SetDeltas(payroll.Adjustments{LoanDeduction: floatPtr(10000)})
	repo.adjustments[periodKey(emp.ID, 1, 2026)] = adj

	calc, err := svc.Calculate(context.Background(), emp.ID, 1, 2026)
	assert.NoError(t, err)
	assert.Equal(t, 10000.0, calc.LoanDeduction)
	assert.Equal(t, 63000.0, calc.NetSalary)
}

func TestCalculateAllSkipsEmployeesWithoutSalary(t *testing.T) {
	repo, _, svc := setupPayrollService(t)
	seedEmployee(repo, 60000)
	repo.employees["E0126002"] = &employee.Employee{
		ID:   "E0126002",
		User: &user.User{Name: "No Salary"},
	}

	calcs, err := svc.CalculateAll(context.Background(), 1, 2026)
	assert.NoError(t, err)
	assert.Len(t, calcs, 1)
	assert.Equal(t, "E0126001", calcs[0].ID)
}

func TestEditStoresDeltaAgainstRaw(t *testing.T) {
	repo, sqlMock, svc := setupPayrollService(t)
	emp := seedEmployee(repo, 73000)

	sqlMock.ExpectBegin()
	sqlMock.ExpectCommit()

	calc, err := svc.Edit(context.Background(), payroll.EditPayrollRequest{
		EmployeeID: emp.ID,
		Month:      1,
		Year:       2026,
		Updates: payroll.PayrollUpdates{
			DerivedFieldUpdates: payroll.DerivedFieldUpdates{
				OvertimeHours: floatPtr(5),
			},
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, 5.0, calc.OvertimeHours)
	assert.Equal(t, 1500.0, calc.OvertimeAmount)

	stored := repo.adjustments[periodKey(emp.ID, 1, 2026)]
	assert.NotNil(t, stored)
	// Raw overtime is zero, so the stored delta equals the submitted value.
	assert.Equal(t, 5.0, *stored.OvertimeHours)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestEditSumsIntoExistingDelta(t *testing.T) {
	repo, sqlMock, svc := setupPayrollService(t)
	emp := seedEmployee(repo, 73000)

	existing := &payroll.PayrollAdjustment{ID: uuid.New(), EmployeeID: emp.ID, Month: 1, Year: 2026}
	existing.SetDeltas(payroll.Adjustments{LoanDeduction: floatPtr(4000)})
	repo.adjustments[periodKey(emp.ID, 1, 2026)] = existing

	sqlMock.ExpectBegin()
	sqlMock.ExpectCommit()

	_, err := svc.Edit(context.Background(), payroll.EditPayrollRequest{
		EmployeeID: emp.ID,
		Month:      1,
		Year:       2026,
		Updates: payroll.PayrollUpdates{
			DerivedFieldUpdates: payroll.DerivedFieldUpdates{
				LoanDeduction: floatPtr(1000),
			},
		},
	})
	assert.NoError(t, err)

	stored := repo.adjustments[periodKey(emp.ID, 1, 2026)]
	assert.Equal(t, 5000.0, *stored.LoanDeduction)
}

func TestEditPrunesAdjustmentBackToRaw(t *testing.T) {
	repo, sqlMock, svc := setupPayrollService(t)
	emp := seedEmployee(repo, 73000)

	existing := &payroll.PayrollAdjustment{ID: uuid.New(), EmployeeID: emp.ID, Month: 1, Year: 2026}
	existing.SetDeltas(payroll.Adjustments{OvertimeHours: floatPtr(5)})
	repo.adjustments[periodKey(emp.ID, 1, 2026)] = existing

	sqlMock.ExpectBegin()
	sqlMock.ExpectCommit()

	// Raw overtime is zero; submitting -5 as a correction nets the delta
	// out and removes the record entirely.
	_, err := svc.Edit(context.Background(), payroll.EditPayrollRequest{
		EmployeeID: emp.ID,
		Month:      1,
		Year:       2026,
		Updates: payroll.PayrollUpdates{
			DerivedFieldUpdates: payroll.DerivedFieldUpdates{
				OvertimeHours: floatPtr(-5),
			},
		},
	})
	assert.NoError(t, err)
	assert.NotContains(t, repo.adjustments, periodKey(emp.ID, 1, 2026))
}

func TestEditOnlineModeRequiresBankFields(t *testing.T) {
	repo, sqlMock, svc := setupPayrollService(t)
	emp := seedEmployee(repo, 73000)
	emp.BankAccount = &employee.BankAccount{BankName: "Habib Bank"}

	_, err := svc.Edit(context.Background(), payroll.EditPayrollRequest{
		EmployeeID: emp.ID,
		Month:      1,
		Year:       2026,
		Updates: payroll.PayrollUpdates{
			ModeOfPayment: strPtr("Online"),
			BankName:      strPtr("Meezan Bank"),
		},
	})
	assert.ErrorIs(t, err, payrollerrors.ErrBankFieldsRequired)

	// The existing account is untouched and no transaction was opened.
	assert.Equal(t, "Habib Bank", emp.BankAccount.BankName)
	assert.Empty(t, repo.upsertedAccounts)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestEditCashModeDeletesBankAccount(t *testing.T) {
	repo, sqlMock, svc := setupPayrollService(t)
	emp := seedEmployee(repo, 73000)
	emp.BankAccount = &employee.BankAccount{BankName: "Habib Bank"}

	sqlMock.ExpectBegin()
	sqlMock.ExpectCommit()

	calc, err := svc.Edit(context.Background(), payroll.EditPayrollRequest{
		EmployeeID: emp.ID,
		Month:      1,
		Year:       2026,
		Updates: payroll.PayrollUpdates{
			ModeOfPayment: strPtr("Cash"),
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{emp.ID}, repo.deletedBankAccounts)
	assert.Equal(t, "Cash", calc.Account)
}

func TestEditWritesThroughSimpleFields(t *testing.T) {
	repo, sqlMock, svc := setupPayrollService(t)
	emp := seedEmployee(repo, 60000)

	sqlMock.ExpectBegin()
	sqlMock.ExpectCommit()

	calc, err := svc.Edit(context.Background(), payroll.EditPayrollRequest{
		EmployeeID: emp.ID,
		Month:      1,
		Year:       2026,
		Updates: payroll.PayrollUpdates{
			Name:        strPtr("Ayesha Raza"),
			Designation: strPtr("Senior Accountant"),
			GrossSalary: floatPtr(70000),
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, "Ayesha Raza", repo.userNames[emp.UserID.String()])
	assert.Equal(t, "Senior Accountant", repo.employees[emp.ID].Designation)
	assert.Equal(t, 70000.0, repo.salaries[emp.ID].GrossSalary)
	// The returned calculation reflects the updated gross.
	assert.Equal(t, 70000.0, calc.GrossSalary)
}

func TestGenerateSlipFoldsBonusIntoNet(t *testing.T) {
	repo, sqlMock, svc := setupPayrollService(t)
	emp := seedEmployee(repo, 60000)
	repo.salaries[emp.ID].FuelAllowance = 5000

	sqlMock.ExpectBegin()
	sqlMock.ExpectCommit()

	slip, err := svc.GenerateSlip(context.Background(), payroll.GenerateSlipRequest{
		EmployeeID: emp.ID,
		Month:      1,
		Year:       2026,
		Bonus:      10000,
		BonusType:  strPtr(payroll.BonusTypeRamadan),
	})
	assert.NoError(t, err)
	assert.Equal(t, 75000.0, slip.NetSalary)
	assert.Equal(t, payroll.BonusTypeRamadan, *slip.BonusType)
	assert.Equal(t, payroll.SlipStatusUnpaid, slip.Status)
}

func TestGenerateSlipIsIdempotent(t *testing.T) {
	repo, sqlMock, svc := setupPayrollService(t)
	emp := seedEmployee(repo, 60000)

	sqlMock.ExpectBegin()
	sqlMock.ExpectCommit()
	sqlMock.ExpectBegin()
	sqlMock.ExpectCommit()

	first, err := svc.GenerateSlip(context.Background(), payroll.GenerateSlipRequest{
		EmployeeID: emp.ID, Month: 1, Year: 2026,
	})
	assert.NoError(t, err)

	second, err := svc.GenerateSlip(context.Background(), payroll.GenerateSlipRequest{
		EmployeeID: emp.ID, Month: 1, Year: 2026, Bonus: 5000,
	})
	assert.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, repo.slips, 1)
	assert.Equal(t, 65000.0, second.NetSalary)
}

func TestGetSlipNotFound(t *testing.T) {
	_, _, svc := setupPayrollService(t)

	_, err := svc.GetSlip(context.Background(), "E0126001", 1, 2026)
	assert.ErrorIs(t, err, payrollerrors.ErrSlipNotFound)
}

func TestExportCSV(t *testing.T) {
	repo, _, svc := setupPayrollService(t)
	emp := seedEmployee(repo, 60000)
	emp.BankAccount = &employee.BankAccount{BankName: "Habib Bank"}

	data, filename, err := svc.ExportCSV(context.Background(), 1, 2026, "")
	assert.NoError(t, err)
	assert.Equal(t, "payroll_January_2026.csv", filename)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, `"Employee ID","Employee Name","Designation","Location","Gross Salary","Fuel Entitlement","Fuel Rate","Fuel Amount","Commission Amount","Overtime Hours","Overtime Amount","Sunday Count","Sunday Amount","Sunday Fuel","Leave Count","Leave Deduction","Half Day Count","Half Day Deduction","Loan Deduction","Net Salary","Account"`, lines[0])
	assert.Contains(t, lines[1], `"E0126001"`)
	assert.Contains(t, lines[1], `"Habib Bank"`)
}

func TestExportCSVBankFilter(t *testing.T) {
	repo, _, svc := setupPayrollService(t)
	emp := seedEmployee(repo, 60000)
	emp.BankAccount = &employee.BankAccount{BankName: "Habib Bank"}

	_, _, err := svc.ExportCSV(context.Background(), 1, 2026, "meezan")
	assert.ErrorIs(t, err, payrollerrors.ErrNoPayrollData)

	data, _, err := svc.ExportCSV(context.Background(), 1, 2026, "habib")
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"Habib Bank"`)
}

func TestExportCSVEmptyMonth(t *testing.T) {
	_, _, svc := setupPayrollService(t)

	_, _, err := svc.ExportCSV(context.Background(), 1, 2026, "")
	assert.ErrorIs(t, err, payrollerrors.ErrNoPayrollData)
}
