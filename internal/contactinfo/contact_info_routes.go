package contactinfo

import (
	"github.com/SamiulIslamRamim/erp-backend-personal/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	contacts := r.Group("/contact-information")
	{
		contacts.GET("", handler.GetAll)
		contacts.GET("/:id", handler.GetByID)
		contacts.POST("", middleware.RateLimitByIP(1, 5), handler.Create)
		contacts.DELETE("/:id", middleware.RateLimitByIP(0.5, 2), handler.Delete)
	}
}
