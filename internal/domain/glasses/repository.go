package glasses

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the persistence contract for Glass aggregates.
//
// Save must persist the order row together with every changed installment
// and any removals in a single transaction: a recalculation touches the new
// entry plus everything after it, and a partial write would leave running
// totals observable in a broken state.
type Repository interface {
	// FindByID loads an order with its installments ordered by paid date
	FindByID(ctx context.Context, id uuid.UUID) (*Glass, error)

	// FindByCustomer loads all orders belonging to a customer
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*Glass, error)

	// FindByInstallmentID loads the order owning the given installment
	FindByInstallmentID(ctx context.Context, installmentID uuid.UUID) (*Glass, error)

	// Save atomically persists the aggregate: order fields, upserted
	// installments and deletions of removed entries
	Save(ctx context.Context, glass *Glass) error

	// Delete removes an order and its installments, children first
	Delete(ctx context.Context, id uuid.UUID) error
}
