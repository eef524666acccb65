package customer

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the persistence contract for Customer aggregates.
// Reads return customers with their orders and ledgers nested, orders by
// creation and installments by paid date ascending.
type Repository interface {
	// FindByID loads a customer with nested orders and installments
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)

	// FindByName finds a customer by exact name match
	FindByName(ctx context.Context, name string) (*Customer, error)

	// FindAll loads every customer with nested orders and installments
	FindAll(ctx context.Context) ([]*Customer, error)

	// Save persists the customer and any attached orders atomically
	Save(ctx context.Context, customer *Customer) error

	// UpdateContact persists only the customer's own fields, leaving
	// attached orders and their ledgers untouched
	UpdateContact(ctx context.Context, customer *Customer) error

	// Delete removes a customer cascading through orders and installments
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteAll wipes all customers, orders and installments
	DeleteAll(ctx context.Context) error
}
