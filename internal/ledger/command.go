// Package ledger defines the state transitions of the transaction collection
// and the ports the rest of the program uses to reach a store.
package ledger

import (
	"errors"
	"fmt"

	"fintrack/internal/core"
)

var (
	ErrDuplicateID    = errors.New("duplicate transaction id")
	ErrNotFound       = errors.New("transaction not found")
	ErrUnknownCommand = errors.New("unknown command")
)

// Command is a tagged mutation: Create, Update or Delete.
type Command interface {
	command()
}

type (
	Create struct{ Transaction core.Transaction }
	Update struct{ Transaction core.Transaction }
	Delete struct{ ID core.ID }
)

func (Create) command() {}
func (Update) command() {}
func (Delete) command() {}

// Name is the operation name used in logs and notifications.
func Name(cmd Command) string {
	switch cmd.(type) {
	case Create:
		return "create"
	case Update:
		return "update"
	case Delete:
		return "delete"
	default:
		return "unknown"
	}
}

// Apply returns the collection that results from running cmd against state.
// state is never modified; on success the result is a fresh slice.
//
// Update and Delete of an id that is not present return state itself together
// with ErrNotFound. A Create whose id is already present returns
// ErrDuplicateID.
func Apply(state []core.Transaction, cmd Command) ([]core.Transaction, error) {
	switch c := cmd.(type) {
	case Create:
		if indexOf(state, c.Transaction.ID) >= 0 {
			return state, fmt.Errorf("%w: %s", ErrDuplicateID, c.Transaction.ID)
		}
		next := make([]core.Transaction, len(state), len(state)+1)
		copy(next, state)
		return append(next, c.Transaction), nil

	case Update:
		i := indexOf(state, c.Transaction.ID)
		if i < 0 {
			return state, fmt.Errorf("%w: %s", ErrNotFound, c.Transaction.ID)
		}
		next := make([]core.Transaction, len(state))
		copy(next, state)
		next[i] = c.Transaction
		return next, nil

	case Delete:
		i := indexOf(state, c.ID)
		if i < 0 {
			return state, fmt.Errorf("%w: %s", ErrNotFound, c.ID)
		}
		next := make([]core.Transaction, 0, len(state)-1)
		next = append(next, state[:i]...)
		return append(next, state[i+1:]...), nil

	default:
		return state, fmt.Errorf("%w: %T", ErrUnknownCommand, cmd)
	}
}

func indexOf(state []core.Transaction, id core.ID) int {
	for i := range state {
		if state[i].ID == id {
			return i
		}
	}
	return -1
}
