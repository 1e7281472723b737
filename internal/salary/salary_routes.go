package salary

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
	salaries := r.Group("/salaries")
	salaries.Use(middleware.AuthMiddleware())
	{
		salaries.GET("", middleware.RBACAuthorize(rbacService, "salary", "read"), handler.GetAll)
		salaries.GET("/:employeeId", middleware.RBACAuthorize(rbacService, "salary", "read"), handler.GetByEmployeeID)
		salaries.POST("", middleware.RBACAuthorize(rbacService, "salary", "create"), handler.Create)
		salaries.PUT("/:employeeId", middleware.RBACAuthorize(rbacService, "salary", "update"), handler.Update)
		salaries.DELETE("/:employeeId", middleware.RBACAuthorize(rbacService, "salary", "update"), handler.Delete)
	}
}
