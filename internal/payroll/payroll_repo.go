package payroll

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"

	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/attendance"
	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/employee"
	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/leave"
	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/salary"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	FindEmployee(ctx context.Context, employeeID string) (*employee.Employee, error)
	FindActiveEmployees(ctx context.Context) ([]employee.Employee, error)
	FindSalary(ctx context.Context, employeeID string) (*salary.Salary, error)
	FindAttendance(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error)
	FindApprovedLeaves(ctx context.Context, employeeID string, from, to time.Time) ([]leave.Leave, error)

	FindAdjustment(ctx context.Context, employeeID string, month, year int) (*PayrollAdjustment, error)
	SaveAdjustment(ctx context.Context, adj *PayrollAdjustment) error
	DeleteAdjustment(ctx context.Context, employeeID string, month, year int) error

	UpdateUserName(ctx context.Context, userID string, name string) error
	UpdateEmployee(ctx context.Context, emp *employee.Employee) error
	UpdateSalary(ctx context.Context, sal *salary.Salary) error
	UpsertBankAccount(ctx context.Context, account *employee.BankAccount) error
	DeleteBankAccount(ctx context.Context, employeeID string) error

	SaveSlip(ctx context.Context, slip *SalarySlip) error
	FindSlip(ctx context.Context, employeeID string, month, year int) (*SalarySlip, error)
	ListSlips(ctx context.Context, month, year int) ([]SalarySlip, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx returns a repository whose statements all run on tx, so the
// caller's commit or rollback covers every write made through it.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	session := r.db.Session(&gorm.Session{NewDB: true, Context: context.Background()})
	session.Statement.ConnPool = tx
	return &repository{db: session}
}

func (r *repository) FindEmployee(ctx context.Context, employeeID string) (*employee.Employee, error) {
	var emp employee.Employee
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("BankAccount").
		Where("id = ?", employeeID).
		First(&emp).Error
	return &emp, err
}

func (r *repository) FindActiveEmployees(ctx context.Context) ([]employee.Employee, error) {
	var employees []employee.Employee
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("BankAccount").
		Where("resign_date IS NULL").
		Order("id asc").
		Find(&employees).Error
	return employees, err
}

func (r *repository) FindSalary(ctx context.Context, employeeID string) (*salary.Salary, error) {
	var sal salary.Salary
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		First(&sal).Error
	return &sal, err
}

func (r *repository) FindAttendance(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	var records []attendance.Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND date >= ? AND date < ?", employeeID, from, to).
		Order("date asc").
		Find(&records).Error
	return records, err
}

func (r *repository) FindApprovedLeaves(ctx context.Context, employeeID string, from, to time.Time) ([]leave.Leave, error) {
	var leaves []leave.Leave
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND status = ? AND date >= ? AND date < ?",
			employeeID, leave.StatusApproved, from, to).
		Order("date asc").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindAdjustment(ctx context.Context, employeeID string, month, year int) (*PayrollAdjustment, error) {
	var adj PayrollAdjustment
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND month = ? AND year = ?", employeeID, month, year).
		First(&adj).Error
	return &adj, err
}

func (r *repository) SaveAdjustment(ctx context.Context, adj *PayrollAdjustment) error {
	return r.db.WithContext(ctx).Save(adj).Error
}

func (r *repository) DeleteAdjustment(ctx context.Context, employeeID string, month, year int) error {
	return r.db.WithContext(ctx).
		Where("employee_id = ? AND month = ? AND year = ?", employeeID, month, year).
		Delete(&PayrollAdjustment{}).Error
}

func (r *repository) UpdateUserName(ctx context.Context, userID string, name string) error {
	return r.db.WithContext(ctx).
		Table("users").
		Where("id = ?", userID).
		Update("name", name).Error
}

func (r *repository) UpdateEmployee(ctx context.Context, emp *employee.Employee) error {
	return r.db.WithContext(ctx).Save(emp).Error
}

func (r *repository) UpdateSalary(ctx context.Context, sal *salary.Salary) error {
	return r.db.WithContext(ctx).Save(sal).Error
}

func (r *repository) UpsertBankAccount(ctx context.Context, account *employee.BankAccount) error {
	var existing employee.BankAccount
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", account.EmployeeID).
		First(&existing).Error
	if err == nil {
		account.ID = existing.ID
		return r.db.WithContext(ctx).Save(account).Error
	}
	if err == gorm.ErrRecordNotFound {
		return r.db.WithContext(ctx).Create(account).Error
	}
	return err
}

func (r *repository) DeleteBankAccount(ctx context.Context, employeeID string) error {
	return r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Delete(&employee.BankAccount{}).Error
}

func (r *repository) SaveSlip(ctx context.Context, slip *SalarySlip) error {
	return r.db.WithContext(ctx).Save(slip).Error
}

func (r *repository) FindSlip(ctx context.Context, employeeID string, month, year int) (*SalarySlip, error) {
	var slip SalarySlip
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND month = ? AND year = ?", employeeID, month, year).
		First(&slip).Error
	return &slip, err
}

func (r *repository) ListSlips(ctx context.Context, month, year int) ([]SalarySlip, error) {
	var slips []SalarySlip
	err := r.db.WithContext(ctx).
		Where("month = ? AND year = ?", month, year).
		Order("employee_id asc").
		Find(&slips).Error
	return slips, err
}
