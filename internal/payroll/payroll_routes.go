package payroll

import (
	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/middleware"
	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
) {
	payroll := r.Group("/payroll")
	payroll.Use(middleware.AuthMiddleware())
	{
		payroll.GET("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "payroll", "read"),
			handler.GetAll,
		)

		payroll.GET("/export",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "payroll", "export"),
			handler.ExportCSV,
		)

		payroll.GET("/:employeeId",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "payroll", "read"),
			handler.GetByEmployee,
		)

		payroll.PUT("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "payroll", "edit"),
			handler.Edit,
		)

		slips := payroll.Group("/slips")
		{
			slips.GET("",
				middleware.RateLimitByUser(1, 5),
				middleware.RBACAuthorize(rbacService, "payroll", "read"),
				handler.ListSlips,
			)

			slips.POST("",
				middleware.RateLimitByUser(0.5, 2),
				middleware.RBACAuthorize(rbacService, "payroll", "generate"),
				middleware.Idempotency(rdb),
				handler.GenerateSlip,
			)

			slips.GET("/:employeeId",
				middleware.RateLimitByUser(3, 10),
				middleware.RBACAuthorize(rbacService, "payroll", "read"),
				handler.GetSlip,
			)

			slips.GET("/:employeeId/pdf",
				middleware.RateLimitByUser(1, 3),
				middleware.RBACAuthorize(rbacService, "payroll", "read"),
				handler.DownloadSlipPDF,
			)
		}
	}
}
