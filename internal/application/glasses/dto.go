package glasses

import (
	"time"

	"github.com/Anugrah-Lens/backend-anugrah-lens/internal/domain/customer"
	"github.com/Anugrah-Lens/backend-anugrah-lens/internal/domain/glasses"
	"github.com/google/uuid"
)

// =============================================================================
// Requests
// =============================================================================

// CreateOrderRequest carries a new order, optionally for an existing
// customer matched by name. Every field is required on the wire; the
// `required` tag also rejects zero prices and deposits, matching the
// legacy field-presence checks.
type CreateOrderRequest struct {
	Name          string    `json:"name" binding:"required"`
	Phone         string    `json:"phone" binding:"required"`
	Address       string    `json:"address" binding:"required"`
	Frame         string    `json:"frame" binding:"required"`
	LensType      string    `json:"lensType" binding:"required"`
	Left          string    `json:"left" binding:"required"`
	Right         string    `json:"right" binding:"required"`
	Price         float64   `json:"price" binding:"required"`
	Deposit       float64   `json:"deposit" binding:"required"`
	OrderDate     time.Time `json:"orderDate" binding:"required"`
	DeliveryDate  time.Time `json:"deliveryDate" binding:"required"`
	PaymentMethod string    `json:"paymentMethod" binding:"required,paymentmethod"`
}

// EditOrderRequest replaces a customer's contact details and an order's
// terms in one call, mirroring the legacy edit endpoint.
type EditOrderRequest struct {
	Name          string    `json:"name" binding:"required"`
	Phone         string    `json:"phone" binding:"required"`
	Address       string    `json:"address" binding:"required"`
	Frame         string    `json:"frame" binding:"required"`
	LensType      string    `json:"lensType" binding:"required"`
	Left          string    `json:"left" binding:"required"`
	Right         string    `json:"right" binding:"required"`
	Price         float64   `json:"price" binding:"required"`
	Deposit       float64   `json:"deposit" binding:"required"`
	OrderDate     time.Time `json:"orderDate" binding:"required"`
	DeliveryDate  time.Time `json:"deliveryDate" binding:"required"`
	PaymentMethod string    `json:"paymentMethod" binding:"required,paymentmethod"`
}

// AddInstallmentRequest records a payment against an order
type AddInstallmentRequest struct {
	Amount   float64   `json:"amount" binding:"required"`
	PaidDate time.Time `json:"paidDate" binding:"required"`
}

// EditInstallmentRequest changes an existing payment's amount and date
type EditInstallmentRequest struct {
	Amount   float64   `json:"amount" binding:"required"`
	PaidDate time.Time `json:"paidDate" binding:"required"`
}

// =============================================================================
// Responses
// =============================================================================

// InstallmentResponse is one ledger entry on the wire
type InstallmentResponse struct {
	ID        uuid.UUID `json:"id"`
	GlassID   uuid.UUID `json:"glassId"`
	PaidDate  time.Time `json:"paidDate"`
	Amount    float64   `json:"amount"`
	Total     float64   `json:"total"`
	Remaining float64   `json:"remaining"`
}

// GlassResponse is an order with its ledger on the wire
type GlassResponse struct {
	ID            uuid.UUID             `json:"id"`
	CustomerID    uuid.UUID             `json:"customerId"`
	Frame         string                `json:"frame"`
	LensType      string                `json:"lensType"`
	Left          string                `json:"left"`
	Right         string                `json:"right"`
	Price         float64               `json:"price"`
	Deposit       float64               `json:"deposit"`
	OrderDate     time.Time             `json:"orderDate"`
	DeliveryDate  time.Time             `json:"deliveryDate"`
	PaymentMethod string                `json:"paymentMethod"`
	PaymentStatus string                `json:"paymentStatus"`
	Installments  []InstallmentResponse `json:"installments"`
}

// CustomerResponse is a customer with nested orders on the wire
type CustomerResponse struct {
	ID      uuid.UUID       `json:"id"`
	Name    string          `json:"name"`
	Phone   string          `json:"phone"`
	Address string          `json:"address"`
	Glasses []GlassResponse `json:"glasses"`
}

// CreateOrderResult reports what order creation did: a brand-new customer
// with a nested order, or a new order attached to an existing customer.
type CreateOrderResult struct {
	ExistingCustomer bool
	Customer         CustomerResponse
	Glass            GlassResponse
}

// EditOrderResult carries the updated customer and order
type EditOrderResult struct {
	Customer CustomerResponse
	Glass    GlassResponse
}

// ToInstallmentResponse converts a ledger entry to its wire form
func ToInstallmentResponse(entry *glasses.Installment) InstallmentResponse {
	return InstallmentResponse{
		ID:        entry.ID,
		GlassID:   entry.GlassID,
		PaidDate:  entry.PaidDate,
		Amount:    entry.Amount.InexactFloat64(),
		Total:     entry.Total.InexactFloat64(),
		Remaining: entry.Remaining.InexactFloat64(),
	}
}

// ToGlassResponse converts an order aggregate to its wire form
func ToGlassResponse(glass *glasses.Glass) GlassResponse {
	installments := make([]InstallmentResponse, 0, len(glass.Installments))
	for _, entry := range glass.Installments {
		installments = append(installments, ToInstallmentResponse(entry))
	}
	return GlassResponse{
		ID:            glass.ID,
		CustomerID:    glass.CustomerID,
		Frame:         glass.Frame,
		LensType:      glass.LensType,
		Left:          glass.Left,
		Right:         glass.Right,
		Price:         glass.Price.InexactFloat64(),
		Deposit:       glass.Deposit.InexactFloat64(),
		OrderDate:     glass.OrderDate,
		DeliveryDate:  glass.DeliveryDate,
		PaymentMethod: glass.PaymentMethod.String(),
		PaymentStatus: glass.PaymentStatus.String(),
		Installments:  installments,
	}
}

// ToCustomerResponse converts a customer aggregate to its wire form
func ToCustomerResponse(c *customer.Customer) CustomerResponse {
	nested := make([]GlassResponse, 0, len(c.Glasses))
	for _, glass := range c.Glasses {
		nested = append(nested, ToGlassResponse(glass))
	}
	return CustomerResponse{
		ID:      c.ID,
		Name:    c.Name,
		Phone:   c.Phone,
		Address: c.Address,
		Glasses: nested,
	}
}
