package handler

import (
	"github.com/Anugrah-Lens/backend-anugrah-lens/internal/application/customers"
	"github.com/Anugrah-Lens/backend-anugrah-lens/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CustomerHandler serves the customer read paths and deletion routes
type CustomerHandler struct {
	BaseHandler
	service *customers.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler
func NewCustomerHandler(service *customers.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: service}
}

// List handles GET /customers. The payload key is the singular
// "customer" to match the legacy wire contract.
func (h *CustomerHandler) List(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, dto.NewSuccess("Customers fetched successfully").WithCustomer(list))
}

// Get handles GET /customer/:id
func (h *CustomerHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.NotFound(c, "Customer not found")
		return
	}

	found, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, dto.NewSuccess("Customer fetched successfully").WithCustomer(found))
}

// Delete handles DELETE /delete-customer/:id
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.NotFound(c, "Customer not found")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, dto.NewSuccess("Customer deleted successfully"))
}

// DeleteAll handles DELETE /delete-all
func (h *CustomerHandler) DeleteAll(c *gin.Context) {
	if err := h.service.DeleteAll(c.Request.Context()); err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, dto.NewSuccess("All data deleted successfully"))
}
