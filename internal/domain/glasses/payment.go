package glasses

import "github.com/shopspring/decimal"

// PaymentMethod represents how an order is paid for
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "Cash"         // Paid in full at order time
	PaymentMethodInstallments PaymentMethod = "Installments" // Paid via dated installments
)

// IsValid checks if the payment method is valid
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodInstallments:
		return true
	}
	return false
}

// String returns the string representation of PaymentMethod
func (m PaymentMethod) String() string {
	return string(m)
}

// PaymentStatus represents the settlement state of an order
type PaymentStatus string

const (
	PaymentStatusPaid   PaymentStatus = "Paid"
	PaymentStatusUnpaid PaymentStatus = "Unpaid"
)

// String returns the string representation of PaymentStatus
func (s PaymentStatus) String() string {
	return string(s)
}

// StatusForRemaining derives the payment status from the final remaining
// balance of an order's ledger: Paid iff nothing remains.
func StatusForRemaining(remaining decimal.Decimal) PaymentStatus {
	if remaining.IsZero() {
		return PaymentStatusPaid
	}
	return PaymentStatusUnpaid
}
