package settingerrors

import (
	"net/http"

	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/shared/apperror"
)

var (
	ErrSettingNotFound = apperror.New(
		apperror.CodeNotFound,
		"setting not found",
		http.StatusNotFound,
	)
)
