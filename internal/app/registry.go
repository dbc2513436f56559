package app

import (
	"hr-ledger/internal/employee"
	"hr-ledger/internal/report"
	"hr-ledger/internal/salary"
	"hr-ledger/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// registerModules is the composition root: repositories, services and
// handlers are constructed once here and injected downward, never reached
// through globals.
func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
) {
	// --- Repositories ---
	counterRepo := counter.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	salaryRepo := salary.NewRepository(gormDB)

	// --- Services ---
	employeeService := employee.NewService(employeeRepo, counterRepo, rdb)
	salaryService := salary.NewService(salaryRepo)
	reportService := report.NewService(salaryService)

	// --- Handlers ---
	employeeHandler := employee.NewHandler(employeeService)
	salaryHandler := salary.NewHandler(salaryService)
	reportHandler := report.NewHandler(reportService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		employee.RegisterRoutes(api, employeeHandler)
		salary.RegisterRoutes(api, salaryHandler)
		report.RegisterRoutes(api, reportHandler)
	}
}
