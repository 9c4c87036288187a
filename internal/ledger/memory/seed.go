package memory

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"

	"fintrack/internal/core"
)

// IDFunc produces transaction ids. Implementations must not repeat values.
type IDFunc func() core.ID

// NewUUID returns a random (version 4) UUID.
func NewUUID() core.ID {
	return core.ID(uuid.NewString())
}

// Sequence returns a monotonic generator starting after start.
func Sequence(start int64) IDFunc {
	var n atomic.Int64
	n.Store(start)
	return func() core.ID {
		return core.ID(strconv.FormatInt(n.Add(1), 10))
	}
}

// DefaultTransactions is the data a fresh tracker starts with.
func DefaultTransactions() []core.Transaction {
	return []core.Transaction{
		{ID: "1", Amount: core.Cents(120000), Category: core.Salary, Description: "Monthly Salary", Date: core.NewDate(2023, 4, 1), Type: core.Income},
		{ID: "2", Amount: core.Cents(50000), Category: core.Housing, Description: "Rent Payment", Date: core.NewDate(2023, 4, 2), Type: core.Expense},
		{ID: "3", Amount: core.Cents(8550), Category: core.Food, Description: "Grocery Shopping", Date: core.NewDate(2023, 4, 3), Type: core.Expense},
		{ID: "4", Amount: core.Cents(4500), Category: core.Transportation, Description: "Gas", Date: core.NewDate(2023, 4, 4), Type: core.Expense},
		{ID: "5", Amount: core.Cents(12000), Category: core.Utilities, Description: "Electricity Bill", Date: core.NewDate(2023, 4, 5), Type: core.Expense},
		{ID: "6", Amount: core.Cents(3500), Category: core.Entertainment, Description: "Movie Tickets", Date: core.NewDate(2023, 4, 6), Type: core.Expense},
		{ID: "7", Amount: core.Cents(20000), Category: core.Investment, Description: "Stock Investment", Date: core.NewDate(2023, 4, 7), Type: core.Income},
		{ID: "8", Amount: core.Cents(6500), Category: core.Shopping, Description: "New Shirt", Date: core.NewDate(2023, 4, 8), Type: core.Expense},
	}
}
