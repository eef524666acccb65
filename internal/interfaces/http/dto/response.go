package dto

import (
	"net/http"

	"github.com/Anugrah-Lens/backend-anugrah-lens/internal/domain/shared"
)

// Envelope is the legacy wire contract: every response carries an error
// flag and a message, plus at most one payload key.
type Envelope struct {
	Error       bool   `json:"error"`
	Message     string `json:"message"`
	Customer    any    `json:"customer,omitempty"`
	Customers   any    `json:"customers,omitempty"`
	Glass       any    `json:"glass,omitempty"`
	Glasses     any    `json:"glasses,omitempty"`
	Installment any    `json:"installment,omitempty"`
}

// NewSuccess builds a success envelope with the given message
func NewSuccess(message string) *Envelope {
	return &Envelope{Error: false, Message: message}
}

// NewError builds an error envelope with the given message
func NewError(message string) *Envelope {
	return &Envelope{Error: true, Message: message}
}

// WithCustomer attaches a customer payload
func (e *Envelope) WithCustomer(customer any) *Envelope {
	e.Customer = customer
	return e
}

// WithCustomers attaches a customer collection payload
func (e *Envelope) WithCustomers(customers any) *Envelope {
	e.Customers = customers
	return e
}

// WithGlass attaches an order payload
func (e *Envelope) WithGlass(glass any) *Envelope {
	e.Glass = glass
	return e
}

// WithGlasses attaches an order collection payload
func (e *Envelope) WithGlasses(glasses any) *Envelope {
	e.Glasses = glasses
	return e
}

// WithInstallment attaches a ledger entry payload
func (e *Envelope) WithInstallment(installment any) *Envelope {
	e.Installment = installment
	return e
}

// GetHTTPStatus maps a domain error code to an HTTP status code
func GetHTTPStatus(code string) int {
	switch code {
	case shared.CodeValidation:
		return http.StatusBadRequest
	case shared.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
