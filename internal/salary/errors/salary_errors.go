package salaryerrors

import (
	"net/http"

	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/shared/apperror"
)

var (
	ErrSalaryNotFound = apperror.New(
		apperror.CodeNotFound,
		"salary not found for this employee",
		http.StatusNotFound,
	)
	ErrSalaryAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"a salary record already exists for this employee",
		http.StatusConflict,
	)
)
