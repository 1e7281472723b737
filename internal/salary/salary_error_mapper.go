package salary

import (
	"errors"
	"strings"

	salaryerrors "github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/salary/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return salaryerrors.ErrSalaryNotFound
	}

	if isUniqueSalaryViolation(err) {
		return salaryerrors.ErrSalaryAlreadyExists
	}

	return err
}

func isUniqueSalaryViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == "uq_salary_employee"
	}

	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_salary_employee")
}
