package summary

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack/internal/core"
	"fintrack/internal/ledger/memory"
)

func TestEngineMatchesRecomputation(t *testing.T) {
	store := memory.New(memory.DefaultTransactions())
	e := NewEngine(4, time.Minute, nil)
	ctx := context.Background()

	check := func() {
		t.Helper()
		snap := store.Snapshot()
		assert.Equal(t, TotalsByType(snap.Transactions), e.Totals(snap))
		assert.Equal(t, CategoryExpenseTotals(snap.Transactions), e.CategoryExpenseTotals(snap))
		assert.Equal(t, RecentTransactions(snap.Transactions, 5), e.Recent(snap, 5))
		assert.Equal(t, FilterTransactions(snap.Transactions, Filter{Type: core.Expense}), e.Filter(snap, Filter{Type: core.Expense}))
	}

	check()
	check() // served from cache

	created, err := store.Create(ctx, core.TransactionInput{
		Amount: core.Cents(99900), Category: core.Travel, Description: "Flights",
		Date: core.NewDate(2023, 4, 10), Type: core.Expense,
	})
	require.NoError(t, err)
	check()
	assert.Equal(t, core.Travel, e.CategoryExpenseTotals(store.Snapshot())[0].Category)

	created.Amount = core.Cents(100)
	store.Update(ctx, created)
	check()

	store.Delete(ctx, "2")
	check()
	assert.Equal(t, core.Cents(8550+4500+12000+3500+6500+100), e.Totals(store.Snapshot()).Expense)
}

func TestEngineReturnsCopies(t *testing.T) {
	snap := memory.New(memory.DefaultTransactions()).Snapshot()
	e := NewEngine(4, 0, nil)

	first := e.CategoryExpenseTotals(snap)
	first[0].Total = core.Cents(1)

	second := e.CategoryExpenseTotals(snap)
	assert.Equal(t, core.Cents(50000), second[0].Total)

	hits, _ := e.categories.Stats()
	assert.Equal(t, uint64(1), hits)
}

func TestEngineBreakdown(t *testing.T) {
	snap := memory.New(memory.DefaultTransactions()).Snapshot()
	e := NewEngine(4, 0, nil)

	assert.Equal(t, NewBreakdown(CategoryExpenseTotals(snap.Transactions), 3), e.Breakdown(snap, 3))
	assert.Len(t, e.Caches(), 2)
}
