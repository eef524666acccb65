package glasses

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(n int) time.Time {
	return time.Date(2024, 1, n, 0, 0, 0, 0, time.UTC)
}

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func entry(paidDate time.Time, amount int64) *Installment {
	e := newInstallment(testGlassID, paidDate, dec(amount))
	return e
}

func TestRecalculateLedger(t *testing.T) {
	t.Run("computes running totals and remaining", func(t *testing.T) {
		entries := []*Installment{
			entry(day(1), 200),
			entry(day(5), 300),
			entry(day(9), 500),
		}

		RecalculateLedger(dec(1000), entries)

		assert.True(t, entries[0].Total.Equal(dec(200)))
		assert.True(t, entries[0].Remaining.Equal(dec(800)))
		assert.True(t, entries[1].Total.Equal(dec(500)))
		assert.True(t, entries[1].Remaining.Equal(dec(500)))
		assert.True(t, entries[2].Total.Equal(dec(1000)))
		assert.True(t, entries[2].Remaining.Equal(dec(0)))
	})

	t.Run("empty sequence is a no-op", func(t *testing.T) {
		RecalculateLedger(dec(1000), nil)
	})

	t.Run("totals follow the recurrence after any rewrite", func(t *testing.T) {
		entries := []*Installment{
			entry(day(1), 250),
			entry(day(2), 100),
			entry(day(3), 50),
		}
		RecalculateLedger(dec(777), entries)

		running := decimal.Zero
		for _, e := range entries {
			running = running.Add(e.Amount)
			assert.True(t, e.Total.Equal(running))
			assert.True(t, e.Remaining.Equal(dec(777).Sub(running)))
		}
	})
}

func TestLedgerRemaining(t *testing.T) {
	t.Run("full price for empty ledger", func(t *testing.T) {
		assert.True(t, LedgerRemaining(dec(500), nil).Equal(dec(500)))
	})

	t.Run("price minus all amounts", func(t *testing.T) {
		entries := []*Installment{entry(day(1), 200), entry(day(2), 100)}
		assert.True(t, LedgerRemaining(dec(500), entries).Equal(dec(200)))
	})
}

func TestInsertionIndex(t *testing.T) {
	entries := []*Installment{
		entry(day(1), 100),
		entry(day(5), 100),
		entry(day(9), 100),
	}

	t.Run("appends when date is newest", func(t *testing.T) {
		assert.Equal(t, 3, insertionIndex(entries, day(10)))
	})

	t.Run("inserts before the first strictly greater date", func(t *testing.T) {
		assert.Equal(t, 1, insertionIndex(entries, day(3)))
	})

	t.Run("equal date lands after existing entries on that date", func(t *testing.T) {
		assert.Equal(t, 2, insertionIndex(entries, day(5)))
	})
}

func TestSortByPaidDateIsStable(t *testing.T) {
	a := entry(day(2), 1)
	b := entry(day(2), 2)
	c := entry(day(1), 3)
	entries := []*Installment{a, b, c}

	sortByPaidDate(entries)

	require.Len(t, entries, 3)
	assert.Same(t, c, entries[0])
	assert.Same(t, a, entries[1])
	assert.Same(t, b, entries[2])
}
