package summary

import (
	"slices"
	"strconv"
	"time"

	"fintrack/internal/cache"
	"fintrack/internal/core"
	"fintrack/internal/log"
)

// Engine memoizes the per-snapshot figures of a single store. Versions are
// only unique within one store, so one Engine must not serve two stores.
type Engine struct {
	totals     *cache.LRUCache[core.Totals]
	categories *cache.LRUCache[[]core.CategoryTotal]
	logger     *log.Logger
}

// NewEngine keeps up to size versions of each figure for at most ttl.
func NewEngine(size int, ttl time.Duration, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.Discard()
	}
	return &Engine{
		totals:     cache.NewLRUCache[core.Totals](size, ttl),
		categories: cache.NewLRUCache[[]core.CategoryTotal](size, ttl),
		logger:     logger.WithComponent(log.ComponentSummary),
	}
}

// Caches exposes the underlying caches so a cache.Manager can sweep them.
func (e *Engine) Caches() []cache.Cleaner {
	return []cache.Cleaner{e.totals, e.categories}
}

// Stats reports the hit rates of both caches.
func (e *Engine) Stats() []cache.Stats {
	return []cache.Stats{e.totals.Report("totals"), e.categories.Report("category_totals")}
}

func (e *Engine) Totals(snap core.Snapshot) core.Totals {
	key := versionKey(snap)
	if t, ok := e.totals.Get(key); ok {
		return t
	}
	t := TotalsByType(snap.Transactions)
	e.totals.Set(key, t)
	e.logger.Debug("Computed totals", log.FieldVersion, snap.Version)
	return t
}

// CategoryExpenseTotals returns a copy; callers may modify it freely.
func (e *Engine) CategoryExpenseTotals(snap core.Snapshot) []core.CategoryTotal {
	key := versionKey(snap)
	if ct, ok := e.categories.Get(key); ok {
		return slices.Clone(ct)
	}
	ct := CategoryExpenseTotals(snap.Transactions)
	e.categories.Set(key, ct)
	e.logger.Debug("Computed category totals", log.FieldVersion, snap.Version, log.FieldCount, len(ct))
	return slices.Clone(ct)
}

func (e *Engine) Breakdown(snap core.Snapshot, top int) Breakdown {
	return NewBreakdown(e.CategoryExpenseTotals(snap), top)
}

// Recent and Filter are cheap enough to recompute on every call.
func (e *Engine) Recent(snap core.Snapshot, n int) []core.Transaction {
	return RecentTransactions(snap.Transactions, n)
}

func (e *Engine) Filter(snap core.Snapshot, f Filter) []core.Transaction {
	return FilterTransactions(snap.Transactions, f)
}

func versionKey(snap core.Snapshot) string {
	return "v" + strconv.FormatUint(snap.Version, 10)
}
