package salary

import (
	"hr-ledger/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	salaries := r.Group("/salaries")
	{
		salaries.GET("",
			middleware.RateLimitByIP(5, 10),
			handler.History,
		)
		salaries.POST("",
			middleware.RateLimitByIP(1, 3),
			handler.Credit,
		)
	}
}
