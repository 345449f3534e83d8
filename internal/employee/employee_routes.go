package employee

import (
	"github.com/SamiulIslamRamim/erp-backend-personal/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	employees := r.Group("/employees")
	{
		employees.GET("", handler.GetAll)
		employees.GET("/options", handler.GetOptions)
		employees.GET("/:id", handler.GetByID)
		employees.POST("", middleware.RateLimitByIP(1, 5), handler.Create)
		employees.PUT("/:id", middleware.RateLimitByIP(1, 5), handler.Update)
		employees.DELETE("/:id", middleware.RateLimitByIP(0.5, 2), handler.Delete)
	}
}
