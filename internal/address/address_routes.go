package address

import (
	"github.com/SamiulIslamRamim/erp-backend-personal/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	registerKind(r.Group("/present-addresses"), handler, Present)
	registerKind(r.Group("/permanent-addresses"), handler, Permanent)
}

func registerKind(g *gin.RouterGroup, handler *Handler, kind Kind) {
	g.GET("", handler.GetAll(kind))
	g.GET("/:id", handler.GetByID(kind))
	g.POST("", middleware.RateLimitByIP(1, 5), handler.Create(kind))
	g.DELETE("/:id", middleware.RateLimitByIP(0.5, 2), handler.Delete(kind))
}
