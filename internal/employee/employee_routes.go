package employee

import (
	"hr-ledger/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/employees")
	{
		employees.GET("",
			middleware.RateLimitByIP(5, 10),
			handler.GetAll,
		)
		employees.GET("/options",
			middleware.RateLimitByIP(5, 10),
			handler.GetOptions,
		)
		employees.GET("/:employeeId",
			middleware.RateLimitByIP(5, 10),
			handler.GetByID,
		)
		employees.POST("",
			middleware.RateLimitByIP(1, 3),
			handler.Register,
		)
		employees.PUT("/:employeeId",
			middleware.RateLimitByIP(1, 3),
			handler.Update,
		)
		employees.DELETE("/:employeeId",
			middleware.RateLimitByIP(0.5, 2),
			handler.Deactivate,
		)
	}
}
