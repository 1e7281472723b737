package attendanceerrors

import (
	"net/http"

	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/shared/apperror"
)

var (
	ErrAlreadyClockedIn = apperror.New(
		apperror.CodeConflict,
		"already clocked in for today",
		http.StatusConflict,
	)
	ErrNotClockedIn = apperror.New(
		apperror.CodeInvalidState,
		"no clock-in found for today",
		http.StatusUnprocessableEntity,
	)
	ErrAlreadyClockedOut = apperror.New(
		apperror.CodeConflict,
		"already clocked out for today",
		http.StatusConflict,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"invalid attendance status",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"month must be 1-12 and year must be 2000-9999",
		http.StatusBadRequest,
	)
)
