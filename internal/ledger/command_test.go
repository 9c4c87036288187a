package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fintrack/internal/core"
)

func fixture() []core.Transaction {
	return []core.Transaction{
		{ID: "1", Amount: core.Cents(120000), Category: core.Salary, Description: "Monthly Salary", Date: core.NewDate(2023, 4, 1), Type: core.Income},
		{ID: "2", Amount: core.Cents(50000), Category: core.Housing, Description: "Rent Payment", Date: core.NewDate(2023, 4, 2), Type: core.Expense},
		{ID: "3", Amount: core.Cents(8550), Category: core.Food, Description: "Grocery Shopping", Date: core.NewDate(2023, 4, 3), Type: core.Expense},
	}
}

func TestApplyCreate(t *testing.T) {
	state := fixture()
	tx := core.Transaction{ID: "4", Amount: core.Cents(4500), Category: core.Transportation, Description: "Gas", Date: core.NewDate(2023, 4, 4), Type: core.Expense}

	next, err := Apply(state, Create{Transaction: tx})
	require.NoError(t, err)
	assert.Len(t, next, 4)
	assert.Equal(t, tx, next[3])
	assert.Len(t, state, 3, "input state must not change")

	_, err = Apply(next, Create{Transaction: tx})
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestApplyUpdateIsPositional(t *testing.T) {
	state := fixture()
	changed := state[1]
	changed.Amount = core.Cents(55000)
	changed.Description = "Rent (new lease)"

	next, err := Apply(state, Update{Transaction: changed})
	require.NoError(t, err)
	require.Len(t, next, 3)
	assert.Equal(t, changed, next[1])
	assert.Equal(t, state[0], next[0])
	assert.Equal(t, state[2], next[2])
	assert.Equal(t, core.Cents(50000), state[1].Amount, "input state must not change")
}

func TestApplyUpdateUnknownID(t *testing.T) {
	state := fixture()
	next, err := Apply(state, Update{Transaction: core.Transaction{ID: "nope"}})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, state, next)
}

func TestApplyDelete(t *testing.T) {
	state := fixture()

	next, err := Apply(state, Delete{ID: "2"})
	require.NoError(t, err)
	assert.Equal(t, []core.ID{"1", "3"}, ids(next))
	assert.Equal(t, []core.ID{"1", "2", "3"}, ids(state))

	again, err := Apply(next, Delete{ID: "2"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, next, again)
}

type bogus struct{ Command }

func TestApplyUnknownCommand(t *testing.T) {
	_, err := Apply(fixture(), bogus{})
	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.Equal(t, "unknown", Name(bogus{}))
}

func TestName(t *testing.T) {
	assert.Equal(t, "create", Name(Create{}))
	assert.Equal(t, "update", Name(Update{}))
	assert.Equal(t, "delete", Name(Delete{}))
}

func ids(txns []core.Transaction) []core.ID {
	out := make([]core.ID, len(txns))
	for i, t := range txns {
		out[i] = t.ID
	}
	return out
}
