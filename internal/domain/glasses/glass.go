package glasses

import (
	"fmt"
	"time"

	"github.com/Anugrah-Lens/backend-anugrah-lens/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Glass represents a single eyewear purchase order. It is the aggregate
// root for the installment ledger: every ledger mutation goes through its
// methods so totals, remaining balances, the deposit mirror and the derived
// payment status stay consistent.
type Glass struct {
	shared.BaseEntity
	CustomerID    uuid.UUID
	Frame         string
	LensType      string
	Left          string
	Right         string
	Price         decimal.Decimal
	Deposit       decimal.Decimal
	OrderDate     time.Time
	DeliveryDate  time.Time
	PaymentMethod PaymentMethod
	PaymentStatus PaymentStatus
	Installments  []*Installment

	removedInstallments []uuid.UUID
}

// NewGlass creates a new order for a customer and seeds its ledger with the
// deposit as the first installment, dated now. The payment status is derived
// from the remaining balance, so a deposit covering the full price yields a
// Paid order regardless of method.
func NewGlass(
	customerID uuid.UUID,
	frame, lensType, left, right string,
	price, deposit decimal.Decimal,
	orderDate, deliveryDate time.Time,
	method PaymentMethod,
) (*Glass, error) {
	if err := validateTerms(price, deposit, orderDate, deliveryDate, method); err != nil {
		return nil, err
	}

	glass := &Glass{
		BaseEntity:    shared.NewBaseEntity(),
		CustomerID:    customerID,
		Frame:         frame,
		LensType:      lensType,
		Left:          left,
		Right:         right,
		Price:         price,
		Deposit:       deposit,
		OrderDate:     orderDate,
		DeliveryDate:  deliveryDate,
		PaymentMethod: method,
	}

	seed := newInstallment(glass.ID, time.Now(), deposit)
	glass.Installments = []*Installment{seed}
	glass.recalculate()

	return glass, nil
}

// AddInstallment records a new payment against the order. The entry is
// merged into the ledger at its chronological position, not blindly
// appended: a payment dated in the past lands logically in the past and
// every later entry is recomputed.
func (g *Glass) AddInstallment(amount decimal.Decimal, paidDate time.Time) (*Installment, error) {
	if !amount.IsPositive() {
		return nil, shared.NewValidationError("Amount must be greater than 0")
	}
	if paidDate.IsZero() {
		return nil, shared.NewValidationError("Paid date is required")
	}
	if len(g.Installments) > 0 && paidDate.Before(g.Installments[0].PaidDate) {
		return nil, shared.NewValidationError("Paid date cannot be earlier than the first installment")
	}

	// The sum-based check equals the remaining at the insertion point for
	// appends, and it is the only check that keeps the final remaining
	// non-negative when the entry lands mid-sequence.
	available := LedgerRemaining(g.Price, g.Installments)
	if amount.GreaterThan(available) {
		return nil, shared.NewValidationError(
			fmt.Sprintf("Amount exceeds remaining balance, maximum is %s", available))
	}

	entry := newInstallment(g.ID, paidDate, amount)
	idx := insertionIndex(g.Installments, paidDate)
	g.Installments = append(g.Installments, nil)
	copy(g.Installments[idx+1:], g.Installments[idx:])
	g.Installments[idx] = entry

	g.recalculate()
	g.Touch()
	return entry, nil
}

// EditInstallment changes the amount and paid date of an existing entry,
// re-sorting the ledger if the date change reorders it. The entry that ends
// up earliest afterwards defines the deposit, which is kept in lockstep.
func (g *Glass) EditInstallment(id uuid.UUID, amount decimal.Decimal, paidDate time.Time) (*Installment, error) {
	idx := g.installmentIndex(id)
	if idx < 0 {
		return nil, shared.NewNotFoundError("Installment not found")
	}
	if !amount.IsPositive() {
		return nil, shared.NewValidationError("Amount must be greater than 0")
	}
	if paidDate.IsZero() {
		return nil, shared.NewValidationError("Paid date is required")
	}

	// The floor is the earliest date among the *other* entries. For the
	// earliest entry itself that is a later date, which is no lower bound
	// at all, so backdating the deposit entry is always allowed.
	if idx > 0 && paidDate.Before(g.Installments[0].PaidDate) {
		return nil, shared.NewValidationError("Paid date cannot be earlier than the first installment")
	}

	available := g.Price.Sub(sumAmountsExcept(g.Installments, idx))
	if amount.GreaterThan(available) {
		return nil, shared.NewValidationError(
			fmt.Sprintf("Amount exceeds remaining balance, maximum is %s", available))
	}

	entry := g.Installments[idx]
	entry.Amount = amount
	entry.PaidDate = paidDate
	entry.Touch()

	sortByPaidDate(g.Installments)
	g.recalculate()
	g.Deposit = g.Installments[0].Amount
	g.Touch()
	return entry, nil
}

// RemoveLatestInstallment deletes the entry with the newest paid date. By
// ledger ordering that is always the tail, so no earlier entry depends on
// it; the payment status is still re-derived, since dropping the newest
// payment can pull the order back out of the Paid state.
func (g *Glass) RemoveLatestInstallment() (*Installment, error) {
	if len(g.Installments) == 0 {
		return nil, shared.NewNotFoundError("No installment found to delete.")
	}

	last := len(g.Installments) - 1
	removed := g.Installments[last]
	g.Installments = g.Installments[:last]
	g.removedInstallments = append(g.removedInstallments, removed.ID)

	g.recalculate()
	g.Touch()
	return removed, nil
}

// UpdateTerms replaces the order's attributes. For installment orders the
// earliest ledger entry mirrors the (possibly changed) deposit, keeping its
// paid date; the whole ledger is then recomputed against the new price.
func (g *Glass) UpdateTerms(
	frame, lensType, left, right string,
	price, deposit decimal.Decimal,
	orderDate, deliveryDate time.Time,
	method PaymentMethod,
) error {
	if err := validateTerms(price, deposit, orderDate, deliveryDate, method); err != nil {
		return err
	}

	if method == PaymentMethodInstallments && len(g.Installments) > 0 {
		rest := sumAmountsExcept(g.Installments, 0)
		if deposit.GreaterThan(price.Sub(rest)) {
			return shared.NewValidationError(
				fmt.Sprintf("Amount exceeds remaining balance, maximum is %s", price.Sub(rest)))
		}
		first := g.Installments[0]
		first.Amount = deposit
		first.Touch()
	} else if price.LessThan(sumAmounts(g.Installments)) {
		return shared.NewValidationError("Price is less than the amount already paid")
	}

	g.Frame = frame
	g.LensType = lensType
	g.Left = left
	g.Right = right
	g.Price = price
	g.Deposit = deposit
	g.OrderDate = orderDate
	g.DeliveryDate = deliveryDate
	g.PaymentMethod = method

	g.recalculate()
	g.Touch()
	return nil
}

// Outstanding returns the remaining balance after all recorded payments.
func (g *Glass) Outstanding() decimal.Decimal {
	return LedgerRemaining(g.Price, g.Installments)
}

// LatestInstallment returns the entry with the newest paid date, or nil for
// an empty ledger.
func (g *Glass) LatestInstallment() *Installment {
	if len(g.Installments) == 0 {
		return nil
	}
	return g.Installments[len(g.Installments)-1]
}

// RemovedInstallmentIDs returns the IDs of entries removed from the ledger
// since the aggregate was loaded, for the persistence layer to delete.
func (g *Glass) RemovedInstallmentIDs() []uuid.UUID {
	return g.removedInstallments
}

// ClearRemovedInstallments resets the removed-entry tracking after a save.
func (g *Glass) ClearRemovedInstallments() {
	g.removedInstallments = nil
}

func (g *Glass) installmentIndex(id uuid.UUID) int {
	for i, entry := range g.Installments {
		if entry.ID == id {
			return i
		}
	}
	return -1
}

// recalculate re-runs the ledger math and re-derives the payment status.
func (g *Glass) recalculate() {
	RecalculateLedger(g.Price, g.Installments)
	g.PaymentStatus = StatusForRemaining(g.Outstanding())
}

func validateTerms(price, deposit decimal.Decimal, orderDate, deliveryDate time.Time, method PaymentMethod) error {
	if !price.IsPositive() {
		return shared.NewValidationError("Price must be greater than 0")
	}
	if !deposit.IsPositive() {
		return shared.NewValidationError("Deposit must be greater than 0")
	}
	if deposit.GreaterThan(price) {
		return shared.NewValidationError("Deposit must be less than price")
	}
	if orderDate.After(deliveryDate) {
		return shared.NewValidationError("Order date must be less than delivery date")
	}
	if !method.IsValid() {
		return shared.NewValidationError("Payment method must be Installments or Cash")
	}
	return nil
}
