package attendance

import (
	"net/http"
	"strconv"

	attendanceerrors "github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/attendance/errors"
	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/shared/apperror"
	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("attendance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("attendance request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// ClockIn and ClockOut act on the employee bound to the token.
func (h *Handler) ClockIn(c *gin.Context) {
	employeeID := c.GetString("employee_id")
	if employeeID == "" {
		h.writeServiceError(c, apperror.ErrForbidden)
		return
	}

	resp, err := h.service.ClockIn(c.Request.Context(), employeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) ClockOut(c *gin.Context) {
	employeeID := c.GetString("employee_id")
	if employeeID == "" {
		h.writeServiceError(c, apperror.ErrForbidden)
		return
	}

	resp, err := h.service.ClockOut(c.Request.Context(), employeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Upsert(c *gin.Context) {
	var req UpsertAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Upsert(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByMonth(c *gin.Context) {
	month, year, err := periodParams(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	employeeID := c.Param("employeeId")
	resp, err := h.service.GetByMonth(c.Request.Context(), employeeID, month, year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetAllByMonth(c *gin.Context) {
	month, year, err := periodParams(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.GetAllByMonth(c.Request.Context(), month, year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func periodParams(c *gin.Context) (int, int, error) {
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		return 0, 0, attendanceerrors.ErrInvalidPeriod
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		return 0, 0, attendanceerrors.ErrInvalidPeriod
	}
	return month, year, nil
}
