package customer

import (
	"strings"

	"github.com/Anugrah-Lens/backend-anugrah-lens/internal/domain/glasses"
	"github.com/Anugrah-Lens/backend-anugrah-lens/internal/domain/shared"
)

// Customer owns zero or more Glass orders. The name doubles as a soft
// lookup key when creating an order: an incoming order for an existing
// name is attached to that customer instead of creating a duplicate. This
// is a merge heuristic, not an identity guarantee.
type Customer struct {
	shared.BaseEntity
	Name    string
	Phone   string
	Address string
	Glasses []*glasses.Glass
}

// NewCustomer creates a customer with the required contact fields
func NewCustomer(name, phone, address string) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewValidationError("Name is required")
	}
	return &Customer{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Phone:      phone,
		Address:    address,
	}, nil
}

// Update replaces the customer's contact details
func (c *Customer) Update(name, phone, address string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewValidationError("Name is required")
	}
	c.Name = name
	c.Phone = phone
	c.Address = address
	c.Touch()
	return nil
}

// AttachGlass adds a new order to the customer
func (c *Customer) AttachGlass(glass *glasses.Glass) {
	c.Glasses = append(c.Glasses, glass)
}
