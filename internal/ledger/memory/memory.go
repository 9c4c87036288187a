package memory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"fintrack/internal/core"
	"fintrack/internal/ledger"
	"fintrack/internal/log"
	"fintrack/internal/notify"
)

// SeedFile is the file NewFromFiles looks for in its base directory.
const SeedFile = "seed_transactions.json"

// ErrUninitialized is the panic value of any call on a Store that was not
// built by New or NewFromFiles.
var ErrUninitialized = errors.New("memory: transaction store used before initialization")

const maxIDAttempts = 8

// Store owns the canonical transaction collection. Construct it once at
// start-up and hand the pointer to every consumer; the zero value is unusable.
//
// Every mutation goes through ledger.Apply and swaps the whole slice, so a
// slice obtained from an earlier read is never touched again.
type Store struct {
	mu       sync.RWMutex
	ready    bool
	version  uint64
	items    []core.Transaction
	newID    IDFunc
	notifier notify.Notifier
	logger   *log.Logger
	events   *log.StructuredLogger
}

type Option func(*Store)

// WithIDs replaces the default UUID generator.
func WithIDs(f IDFunc) Option {
	return func(s *Store) { s.newID = f }
}

func WithNotifier(n notify.Notifier) Option {
	return func(s *Store) { s.notifier = n }
}

func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.logger = l.WithComponent(log.ComponentLedger) }
}

// New builds a store holding seed. Later duplicates of an id are dropped.
func New(seed []core.Transaction, opts ...Option) *Store {
	s := &Store{
		newID:    NewUUID,
		notifier: notify.Nop,
		logger:   log.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.events = log.NewStructuredLogger(s.logger)
	s.items = s.dedupe(seed)
	s.version = 1
	s.ready = true
	return s
}

// NewFromFiles seeds the store from base/seed_transactions.json, falling back
// to DefaultTransactions when the file is missing or unreadable.
func NewFromFiles(base string, opts ...Option) *Store {
	path := filepath.Join(base, SeedFile)
	seed, err := readSeed(path)
	if err != nil {
		s := New(DefaultTransactions(), opts...)
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("Ignoring seed file, using defaults", "path", path, log.FieldError, err)
		}
		return s
	}
	s := New(seed, opts...)
	s.logger.Info("Seeded transactions from file", "path", path, log.FieldCount, len(s.items))
	return s
}

// Create stores in under a freshly generated id and returns the stored value.
func (s *Store) Create(ctx context.Context, in core.TransactionInput) (core.Transaction, error) {
	s.mustInit()

	s.mu.Lock()
	var (
		tx  core.Transaction
		err error
	)
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		tx = in.WithID(s.newID())
		if err = s.applyLocked(ledger.Create{Transaction: tx}); !errors.Is(err, ledger.ErrDuplicateID) {
			break
		}
	}
	version := s.version
	s.mu.Unlock()

	if err != nil {
		s.events.LogError(ctx, "Failed to create transaction", err, log.ComponentLedger, log.OpCreate, nil)
		return core.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}
	s.committed(ctx, log.OpCreate, version, notify.TransactionAdded(tx))
	return tx, nil
}

// Update replaces the stored transaction with t.ID. An unknown id leaves the
// collection untouched and returns false.
func (s *Store) Update(ctx context.Context, t core.Transaction) bool {
	s.mustInit()

	s.mu.Lock()
	err := s.applyLocked(ledger.Update{Transaction: t})
	version := s.version
	s.mu.Unlock()

	if err != nil {
		s.logger.DebugContext(ctx, "Update ignored", log.FieldTxID, string(t.ID), log.FieldError, err)
		return false
	}
	s.committed(ctx, log.OpUpdate, version, notify.TransactionUpdated(t))
	return true
}

// Delete removes the transaction with id if present and returns it as it was
// at removal. Deleting twice is harmless; the second call reports false.
func (s *Store) Delete(ctx context.Context, id core.ID) (core.Transaction, bool) {
	s.mustInit()

	s.mu.Lock()
	old, found := s.getLocked(id)
	err := s.applyLocked(ledger.Delete{ID: id})
	version := s.version
	s.mu.Unlock()

	if !found || err != nil {
		s.logger.DebugContext(ctx, "Delete ignored", log.FieldTxID, string(id))
		return core.Transaction{}, false
	}
	s.committed(ctx, log.OpDelete, version, notify.TransactionDeleted(old))
	return old, true
}

// List returns a copy of the current collection.
func (s *Store) List() []core.Transaction {
	s.mustInit()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]core.Transaction(nil), s.items...)
}

// Snapshot returns a copy of the collection together with its version.
func (s *Store) Snapshot() core.Snapshot {
	s.mustInit()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return core.Snapshot{
		Version:      s.version,
		Transactions: append([]core.Transaction(nil), s.items...),
	}
}

func (s *Store) Get(id core.ID) (core.Transaction, bool) {
	s.mustInit()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.getLocked(id)
}

// Version increases by one with every mutation that changed the collection.
func (s *Store) Version() uint64 {
	s.mustInit()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

func (s *Store) Len() int {
	s.mustInit()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *Store) mustInit() {
	if s == nil || !s.ready {
		panic(ErrUninitialized)
	}
}

func (s *Store) applyLocked(cmd ledger.Command) error {
	next, err := ledger.Apply(s.items, cmd)
	if err != nil {
		return err
	}
	s.items = next
	s.version++
	return nil
}

func (s *Store) getLocked(id core.ID) (core.Transaction, bool) {
	for _, t := range s.items {
		if t.ID == id {
			return t, true
		}
	}
	return core.Transaction{}, false
}

func (s *Store) committed(ctx context.Context, op string, version uint64, e notify.Event) {
	t := e.Transaction
	s.events.LogMutation(ctx, e.Title, op, log.NewFields().
		WithTransaction(string(t.ID), string(t.Type), t.Amount.Cents, string(t.Category), t.Date.String()).
		WithVersion(version))
	s.notifier.Notify(ctx, e)
}

// dedupe keeps the first transaction for every id and assigns ids to entries
// that have none.
func (s *Store) dedupe(in []core.Transaction) []core.Transaction {
	seen := make(map[core.ID]struct{}, len(in))
	out := make([]core.Transaction, 0, len(in))
	for _, t := range in {
		if t.ID == "" {
			t.ID = s.newID()
		}
		if _, ok := seen[t.ID]; ok {
			s.logger.Warn("Dropping seed transaction with duplicate id", log.FieldTxID, string(t.ID))
			continue
		}
		seen[t.ID] = struct{}{}
		out = append(out, t)
	}
	return out
}

func readSeed(path string) ([]core.Transaction, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var seed []core.Transaction
	if err := json.Unmarshal(b, &seed); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return seed, nil
}

var _ ledger.Store = (*Store)(nil)
