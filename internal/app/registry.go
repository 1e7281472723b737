package app

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/attendance"
	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/auth"
	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/department"
	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/employee"
	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/leave"
	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/messaging/kafka"
	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/payroll"
	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/rbac"
	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/salary"
	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/setting"
	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/shared/counter"
	"github.com/zohabusinesssolutions/Payroll-ManagementSystemm/internal/user"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	userRepo := user.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	salaryRepo := salary.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	settingRepo := setting.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	rbacService, err := rbac.NewService()
	if err != nil {
		return err
	}

	// --- Services ---
	authService := auth.NewService(userRepo, employeeRepo)
	departmentService := department.NewService(db, departmentRepo)
	employeeService := employee.NewService(db, employeeRepo, userRepo, counterRepo, outboxRepo, rdb)
	salaryService := salary.NewService(db, salaryRepo)
	attendanceService := attendance.NewService(db, attendanceRepo)
	settingService := setting.NewService(db, settingRepo)
	leaveService := leave.NewServiceWithAllowance(db, leaveRepo, settingService)
	payrollService := payroll.NewService(db, payrollRepo, settingService, outboxRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	departmentHandler := department.NewHandler(departmentService)
	employeeHandler := employee.NewHandler(employeeService)
	salaryHandler := salary.NewHandler(salaryService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	leaveHandler := leave.NewHandler(leaveService)
	settingHandler := setting.NewHandler(settingService)
	payrollHandler := payroll.NewHandler(payrollService)

	// --- Routes ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		department.RegisterRoutes(api, departmentHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService)
		salary.RegisterRoutes(api, salaryHandler, rbacService)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService)
		leave.RegisterRoutes(api, leaveHandler, rbacService)
		setting.RegisterRoutes(api, settingHandler, rbacService)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, rdb)
	}

	return nil
}
