package payroll

import (
	"net/http"
	"strconv"

	payrollerrors "github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/payroll/errors"
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
	l := zap.L().Named("payroll.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("payroll request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetAll(c *gin.Context) {
	month, year, err := periodParams(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.CalculateAll(c.Request.Context(), month, year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetByEmployee(c *gin.Context) {
	month, year, err := periodParams(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.Calculate(c.Request.Context(), c.Param("employeeId"), month, year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Edit(c *gin.Context) {
	var req EditPayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Edit(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GenerateSlip(c *gin.Context) {
	var req GenerateSlipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.GenerateSlip(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetSlip(c *gin.Context) {
	month, year, err := periodParams(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.GetSlip(c.Request.Context(), c.Param("employeeId"), month, year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListSlips(c *gin.Context) {
	month, year, err := periodParams(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.ListSlips(c.Request.Context(), month, year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DownloadSlipPDF(c *gin.Context) {
	month, year, err := periodParams(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	pdf, filename, err := h.service.RenderSlipPDF(c.Request.Context(), c.Param("employeeId"), month, year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *Handler) ExportCSV(c *gin.Context) {
	month, year, err := periodParams(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	csv, filename, err := h.service.ExportCSV(c.Request.Context(), month, year, c.Query("bank"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", csv)
}

func periodParams(c *gin.Context) (int, int, error) {
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		return 0, 0, payrollerrors.ErrInvalidPeriod
	}
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		return 0, 0, payrollerrors.ErrInvalidPeriod
	}
	return month, year, nil
}
