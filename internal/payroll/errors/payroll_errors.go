package payrollerrors

import (
	"net/http"

	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/shared/apperror"
)

var (
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"month must be 1-12 and year must be 2000-9999",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrSalaryNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee has no salary record",
		http.StatusNotFound,
	)
	ErrSlipNotFound = apperror.New(
		apperror.CodeNotFound,
		"salary slip not found",
		http.StatusNotFound,
	)
	ErrNoUpdates = apperror.New(
		apperror.CodeInvalidInput,
		"updates payload cannot be empty",
		http.StatusBadRequest,
	)
	ErrInvalidPaymentMode = apperror.New(
		apperror.CodeInvalidInput,
		"mode_of_payment must be Cash or Online",
		http.StatusBadRequest,
	)
	ErrBankFieldsRequired = apperror.New(
		apperror.CodeInvalidInput,
		"bank name, account title, account number and branch code are required for Online payment mode",
		http.StatusBadRequest,
	)
	ErrInvalidBonusType = apperror.New(
		apperror.CodeInvalidInput,
		"bonus_type must be RAMADAN or PERFORMANCE",
		http.StatusBadRequest,
	)
	ErrNoPayrollData = apperror.New(
		apperror.CodeNotFound,
		"no payroll data found for the specified month and year",
		http.StatusNotFound,
	)
)
