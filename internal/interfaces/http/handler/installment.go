package handler

import (
	glassesapp "github.com/Anugrah-Lens/backend-anugrah-lens/internal/application/glasses"
	"github.com/Anugrah-Lens/backend-anugrah-lens/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InstallmentHandler serves the ledger mutation routes
type InstallmentHandler struct {
	BaseHandler
	service *glassesapp.InstallmentService
}

// NewInstallmentHandler creates a new InstallmentHandler
func NewInstallmentHandler(service *glassesapp.InstallmentService) *InstallmentHandler {
	return &InstallmentHandler{service: service}
}

// Add handles POST /add-installment/:glassId
func (h *InstallmentHandler) Add(c *gin.Context) {
	glassID, err := uuid.Parse(c.Param("glassId"))
	if err != nil {
		h.NotFound(c, "Glass not found")
		return
	}

	var req glassesapp.AddInstallmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, installmentBindErrorMessage(err))
		return
	}

	entry, err := h.service.Add(c.Request.Context(), glassID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, dto.NewSuccess("Installment added successfully").WithInstallment(entry))
}

// Edit handles PUT /edit-installment/:installmentId
func (h *InstallmentHandler) Edit(c *gin.Context) {
	installmentID, err := uuid.Parse(c.Param("installmentId"))
	if err != nil {
		h.NotFound(c, "Installment not found")
		return
	}

	var req glassesapp.EditInstallmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, installmentBindErrorMessage(err))
		return
	}

	entry, err := h.service.Edit(c.Request.Context(), installmentID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, dto.NewSuccess("Installment updated successfully").WithInstallment(entry))
}

// DeleteLatest handles DELETE /delete-latest-installment/:glassId
func (h *InstallmentHandler) DeleteLatest(c *gin.Context) {
	glassID, err := uuid.Parse(c.Param("glassId"))
	if err != nil {
		h.NotFound(c, "No installment found to delete.")
		return
	}

	entry, err := h.service.DeleteLatest(c.Request.Context(), glassID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.OK(c, dto.NewSuccess("Latest installment deleted successfully").WithInstallment(entry))
}
