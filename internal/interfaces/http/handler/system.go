package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SystemHandler serves the landing route
type SystemHandler struct{}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// Landing handles GET / with the legacy greeting
func (h *SystemHandler) Landing(c *gin.Context) {
	c.String(http.StatusOK, "Hello World!")
}
