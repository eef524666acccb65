package handler

import (
	glassesapp "github.com/Anugrah-Lens/backend-anugrah-lens/internal/application/glasses"
	"github.com/Anugrah-Lens/backend-anugrah-lens/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GlassHandler serves order creation, editing, and listing routes
type GlassHandler struct {
	BaseHandler
	service *glassesapp.OrderService
}

// NewGlassHandler creates a new GlassHandler
func NewGlassHandler(service *glassesapp.OrderService) *GlassHandler {
	return &GlassHandler{service: service}
}

// Create handles POST /add-customer. The route creates an order, and a
// customer too when the name is unknown.
func (h *GlassHandler) Create(c *gin.Context) {
	var req glassesapp.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, bindErrorMessage(err))
		return
	}

	result, err := h.service.CreateOrder(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if result.ExistingCustomer {
		h.OK(c, dto.NewSuccess("Existing customer, new glass added successfully").WithGlass(result.Glass))
		return
	}

	h.OK(c, dto.NewSuccess("Customer and glass added successfully").WithCustomer(result.Customer))
}

// Update handles PUT /edit-customer/:id/:glassId
func (h *GlassHandler) Update(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.NotFound(c, "Customer not found")
		return
	}
	glassID, err := uuid.Parse(c.Param("glassId"))
	if err != nil {
		h.NotFound(c, "Glass not found")
		return
	}

	var req glassesapp.EditOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, bindErrorMessage(err))
		return
	}

	result, err := h.service.UpdateOrder(c.Request.Context(), customerID, glassID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, dto.NewSuccess("Customer and glass details updated successfully").
		WithCustomer(result.Customer).
		WithGlass(result.Glass))
}

// ListForCustomer handles GET /customer/:id/glasses
func (h *GlassHandler) ListForCustomer(c *gin.Context) {
	customerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.NotFound(c, "Customer not found")
		return
	}

	list, err := h.service.GlassesForCustomer(c.Request.Context(), customerID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, dto.NewSuccess("Glasses fetched successfully").WithGlasses(list))
}
