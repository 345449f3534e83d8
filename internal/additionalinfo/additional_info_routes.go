package additionalinfo

import (
	"github.com/SamiulIslamRamim/erp-backend-personal/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	infos := r.Group("/additional-information")
	{
		infos.GET("", handler.GetAll)
		infos.GET("/:id", handler.GetByID)
		infos.POST("", middleware.RateLimitByIP(1, 5), handler.Create)
		infos.DELETE("/:id", middleware.RateLimitByIP(0.5, 2), handler.Delete)
	}
}
