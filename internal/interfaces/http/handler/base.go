package handler

import (
	"errors"
	"net/http"

	"github.com/Anugrah-Lens/backend-anugrah-lens/internal/domain/shared"
	"github.com/Anugrah-Lens/backend-anugrah-lens/internal/infrastructure/logger"
	"github.com/Anugrah-Lens/backend-anugrah-lens/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BaseHandler provides the envelope helpers shared by all handlers
type BaseHandler struct{}

// OK sends a 200 response with the given envelope
func (h *BaseHandler) OK(c *gin.Context, envelope *dto.Envelope) {
	c.JSON(http.StatusOK, envelope)
}

// BadRequest sends a 400 error envelope
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.NewError(message))
}

// NotFound sends a 404 error envelope
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, dto.NewError(message))
}

// HandleError converts domain errors to the envelope with the mapped
// status code. Anything that is not a domain error is logged and hidden
// behind a generic 500 message.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		c.JSON(dto.GetHTTPStatus(domainErr.Code), dto.NewError(domainErr.Message))
		return
	}

	logger.GetGinLogger(c).Error("request failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, dto.NewError("Internal server error"))
}
