package employeeerrors

import (
	"net/http"

	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"an account with this email already exists",
		http.StatusConflict,
	)
	ErrEmployeeResigned = apperror.New(
		apperror.CodeInvalidState,
		"employee has already resigned",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidJoiningDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid joining_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
