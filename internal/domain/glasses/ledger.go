package glasses

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Ledger math: pure functions over a paidDate-ordered sequence of
// installments. The recurrence is
//
//	total[i]     = total[i-1] + amount[i]
//	remaining[i] = price - total[i]
//
// with total[-1] = 0. Every mutation on the Glass aggregate funnels
// through RecalculateLedger so the recurrence is written in one place.

// RecalculateLedger rewrites Total and Remaining for every entry in the
// ordered sequence against the given price. Entries must already be sorted
// by PaidDate ascending.
func RecalculateLedger(price decimal.Decimal, entries []*Installment) {
	running := decimal.Zero
	for _, entry := range entries {
		running = running.Add(entry.Amount)
		entry.Total = running
		entry.Remaining = price.Sub(running)
	}
}

// LedgerRemaining returns the remaining balance after the whole ordered
// sequence, i.e. price minus the sum of all amounts. For an empty ledger
// this is the full price.
func LedgerRemaining(price decimal.Decimal, entries []*Installment) decimal.Decimal {
	return price.Sub(sumAmounts(entries))
}

// insertionIndex returns the position at which an entry dated paidDate
// belongs: the first index whose date is strictly greater. Entries sharing
// the date keep their existing order, so a same-day payment lands after
// the ones already recorded.
func insertionIndex(entries []*Installment, paidDate time.Time) int {
	for i, entry := range entries {
		if entry.PaidDate.After(paidDate) {
			return i
		}
	}
	return len(entries)
}

// sortByPaidDate restores date order after an edit moved an entry. The
// sort is stable so entries on the same date keep their relative order.
func sortByPaidDate(entries []*Installment) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].PaidDate.Before(entries[j].PaidDate)
	})
}

func sumAmounts(entries []*Installment) decimal.Decimal {
	sum := decimal.Zero
	for _, entry := range entries {
		sum = sum.Add(entry.Amount)
	}
	return sum
}

// sumAmountsExcept sums all amounts except the entry at the given index.
func sumAmountsExcept(entries []*Installment, skip int) decimal.Decimal {
	sum := decimal.Zero
	for i, entry := range entries {
		if i == skip {
			continue
		}
		sum = sum.Add(entry.Amount)
	}
	return sum
}
