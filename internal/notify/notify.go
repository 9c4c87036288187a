// Package notify delivers user-facing messages about store mutations. The
// display itself belongs to whatever front end is attached; this package only
// shapes the message and hands it to a Notifier.
package notify

import (
	"context"
	"sync"

	"fintrack/internal/core"
	"fintrack/internal/log"
)

type Kind string

const (
	Added   Kind = "added"
	Updated Kind = "updated"
	Deleted Kind = "deleted"
)

// Event is a short title/description pair plus the transaction it concerns.
type Event struct {
	Kind        Kind             `json:"kind"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Transaction core.Transaction `json:"transaction"`
}

type Notifier interface {
	Notify(ctx context.Context, e Event)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, e Event)

func (f NotifierFunc) Notify(ctx context.Context, e Event) { f(ctx, e) }

// Nop drops every event.
var Nop Notifier = NotifierFunc(func(context.Context, Event) {})

func typeLabel(t core.TransactionType) string {
	if t == core.Expense {
		return "Expense"
	}
	return "Income"
}

func TransactionAdded(t core.Transaction) Event {
	return Event{
		Kind:        Added,
		Title:       "Transaction added",
		Description: typeLabel(t.Type) + " of " + t.Amount.String() + " added.",
		Transaction: t,
	}
}

func TransactionUpdated(t core.Transaction) Event {
	return Event{
		Kind:        Updated,
		Title:       "Transaction updated",
		Description: typeLabel(t.Type) + " has been updated.",
		Transaction: t,
	}
}

func TransactionDeleted(t core.Transaction) Event {
	return Event{
		Kind:        Deleted,
		Title:       "Transaction deleted",
		Description: "The transaction has been removed.",
		Transaction: t,
	}
}

// LogNotifier writes events to the structured log.
type LogNotifier struct {
	logger *log.Logger
}

func NewLogNotifier(logger *log.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.WithComponent(log.ComponentNotify)}
}

func (n *LogNotifier) Notify(ctx context.Context, e Event) {
	n.logger.InfoContext(ctx, e.Title, "description", e.Description, log.FieldTxID, string(e.Transaction.ID))
}

// Recorder keeps every event in memory, newest last.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Notify(_ context.Context, e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}
