package app

import (
	"context"
	"os"

	"hr-ledger/internal/bootstrap"
	"hr-ledger/internal/employee"
	"hr-ledger/internal/salary"
	"hr-ledger/internal/shared/connection"
	"hr-ledger/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// The one configuration value the service takes (a connection string from
// the deployment environment, localhost when absent).
const defaultDSN = "host=localhost user=postgres password=postgres dbname=hrledger port=5432 sslmode=disable"

// BuildApp connects the storage layer, ensures the schema and its unique
// indexes exist, and wires every module into the router. The returned error
// is fatal to the process: without storage there is nothing to serve.
func BuildApp(router *gin.Engine, auditLogger bootstrap.AuditLogger) error {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		zap.L().Warn("DATABASE_URL not set, falling back to localhost")
		dsn = defaultDSN
	}

	gormDB, err := connection.ConnectGORMWithRetry(dsn, 5)
	if err != nil {
		return err
	}

	// Index creation is safe to run on every startup; the unique indexes are
	// what actually enforce the duplicate rules.
	if err := gormDB.AutoMigrate(
		&employee.Employee{},
		&salary.SalaryTransaction{},
		&counter.Counter{},
	); err != nil {
		return err
	}
	zap.L().Info("database schema ensured")

	// Redis is optional: without it the options cache is simply skipped.
	var rdb *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb, err = connection.ConnectRedisWithRetry(addr, 2)
		if err != nil {
			zap.L().Warn("redis unavailable, employee options cache disabled", zap.Error(err))
			rdb = nil
		}
	} else {
		zap.L().Info("REDIS_ADDR not set, employee options cache disabled")
	}

	registerModules(router, gormDB, rdb)

	auditLogger.Log(context.Background(), bootstrap.AuditLog{
		Action:  "APP_BUILT",
		Message: "Storage connected and modules registered",
	})

	return nil
}
