package attendance

import (
	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/middleware"
	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
) {
	attendances := r.Group("/attendances")
	attendances.Use(middleware.AuthMiddleware())
	{
		attendances.POST("/clock-in",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "attendance", "clock"),
			handler.ClockIn,
		)
		attendances.POST("/clock-out",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "attendance", "clock"),
			handler.ClockOut,
		)
		attendances.GET("/:employeeId",
			middleware.RBACAuthorize(rbacService, "attendance", "read"),
			handler.GetByMonth,
		)
		attendances.GET("",
			middleware.RBACAuthorize(rbacService, "attendance", "manage"),
			handler.GetAllByMonth,
		)
		attendances.PUT("",
			middleware.RBACAuthorize(rbacService, "attendance", "manage"),
			handler.Upsert,
		)
	}
}
