package ledger

import (
	"context"

	"fintrack/internal/core"
)

// Ports used by the view adapter.
type (
	TransactionWriter interface {
		Create(ctx context.Context, in core.TransactionInput) (core.Transaction, error)
		// Update replaces the transaction with the same id; it reports
		// whether one was found.
		Update(ctx context.Context, t core.Transaction) bool
		// Delete removes the transaction and returns it as removed; unknown
		// ids are a no-op.
		Delete(ctx context.Context, id core.ID) (core.Transaction, bool)
	}

	TransactionReader interface {
		List() []core.Transaction
		Get(id core.ID) (core.Transaction, bool)
		// Snapshot returns the current collection together with its version.
		Snapshot() core.Snapshot
	}

	Store interface {
		TransactionWriter
		TransactionReader
	}
)
