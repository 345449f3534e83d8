package address

import (
	"net/http"

	"github.com/SamiulIslamRamim/erp-backend-personal/internal/shared/apperror"
	"github.com/SamiulIslamRamim/erp-backend-personal/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("address.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("address.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("address request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Create accepts the raw payload as an untyped map so that the schema layer
// owns every shape decision, including which violations to report together.
func (h *Handler) Create(kind Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.logger.Debug("http create address", zap.String("kind", string(kind)))

		var payload map[string]any
		if err := c.ShouldBindJSON(&payload); err != nil {
			h.logger.Warn("http create address malformed body", zap.Error(err))
			response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Request body must be a JSON object", err.Error())
			return
		}

		resp, err := h.service.Create(c.Request.Context(), kind, payload)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}

		response.Success(c, http.StatusCreated, resp, nil)
	}
}

func (h *Handler) GetByID(kind Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		h.logger.Debug("http get address by id",
			zap.String("kind", string(kind)),
			zap.String("address_id", id),
		)

		resp, err := h.service.GetByID(c.Request.Context(), kind, id)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}

		response.Success(c, http.StatusOK, resp, nil)
	}
}

func (h *Handler) GetAll(kind Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.logger.Debug("http get all addresses", zap.String("kind", string(kind)))

		resp, err := h.service.GetAll(c.Request.Context(), kind)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}

		response.Success(c, http.StatusOK, resp, nil)
	}
}

func (h *Handler) Delete(kind Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		h.logger.Debug("http delete address",
			zap.String("kind", string(kind)),
			zap.String("address_id", id),
		)

		if err := h.service.Delete(c.Request.Context(), kind, id); err != nil {
			h.writeServiceError(c, err)
			return
		}

		response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
	}
}
