package setting

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
	settings := r.Group("/settings")
	settings.Use(middleware.AuthMiddleware())
	{
		settings.GET("", middleware.RBACAuthorize(rbacService, "setting", "read"), handler.GetAll)
		settings.GET("/:title", middleware.RBACAuthorize(rbacService, "setting", "read"), handler.GetByTitle)
		settings.PUT("", middleware.RBACAuthorize(rbacService, "setting", "update"), handler.Upsert)
	}
}
