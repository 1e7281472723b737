package leaveerrors

import (
	"net/http"

	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/shared/apperror"
)

var (
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave request not found",
		http.StatusNotFound,
	)
	ErrInvalidLeaveType = apperror.New(
		apperror.CodeInvalidInput,
		"leave type must be FULLDAY or HALFDAY",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrAlreadyDecided = apperror.New(
		apperror.CodeInvalidState,
		"leave request has already been decided",
		http.StatusUnprocessableEntity,
	)
	ErrDuplicateLeave = apperror.New(
		apperror.CodeConflict,
		"a leave request already exists for this date",
		http.StatusConflict,
	)
	ErrNotOwner = apperror.New(
		apperror.CodeForbidden,
		"you can only manage your own leave requests",
		http.StatusForbidden,
	)
)
