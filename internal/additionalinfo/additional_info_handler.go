package additionalinfo

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
	l := zap.L().Named("additionalinfo.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("additionalinfo.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("additional information request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	h.logger.Debug("http create additional information")

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Warn("http create additional information malformed body", zap.Error(err))
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Request body must be a JSON object", err.Error())
		return
	}

	resp, err := h.service.Create(c.Request.Context(), payload)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	id := c.Param("id")
	h.logger.Debug("http get additional information by id", zap.String("additional_information_id", id))

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	h.logger.Debug("http get all additional information")

	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	h.logger.Debug("http delete additional information", zap.String("additional_information_id", id))

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
