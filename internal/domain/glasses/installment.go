package glasses

import (
	"time"

	"github.com/Anugrah-Lens/backend-anugrah-lens/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Installment is one dated payment applied against a Glass order.
// Total and Remaining are running figures maintained by the ledger
// recalculation; they are never set by callers directly.
type Installment struct {
	shared.BaseEntity
	GlassID   uuid.UUID
	PaidDate  time.Time
	Amount    decimal.Decimal
	Total     decimal.Decimal
	Remaining decimal.Decimal
}

func newInstallment(glassID uuid.UUID, paidDate time.Time, amount decimal.Decimal) *Installment {
	return &Installment{
		BaseEntity: shared.NewBaseEntity(),
		GlassID:    glassID,
		PaidDate:   paidDate,
		Amount:     amount,
	}
}
