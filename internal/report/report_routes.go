package report

import (
	"hr-ledger/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	reports := r.Group("/reports")
	{
		reports.GET("/salaries/:month",
			middleware.RateLimitByIP(5, 10),
			handler.Monthly,
		)
		reports.GET("/salaries/:month/export",
			middleware.RateLimitByIP(1, 3),
			handler.Export,
		)
	}
}
