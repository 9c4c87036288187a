// Package summary derives dashboard figures from a transaction snapshot.
//
// Every function here is pure: it reads the slice it is given, never modifies
// it, and returns freshly allocated results. Engine adds memoization keyed on
// the snapshot version and must agree with the plain functions at all times.
package summary

import (
	"cmp"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"fintrack/internal/core"
)

// Filter narrows a transaction list. The zero value keeps everything.
type Filter struct {
	// Type keeps only transactions of this type when set.
	Type core.TransactionType
	// SearchTerm keeps only transactions whose description or category key
	// contains it, ignoring case, when non-empty. It is matched as given,
	// surrounding whitespace included.
	SearchTerm string
}

// CategoryExpenseTotals sums expense amounts per category. Categories that sum
// to zero are left out; the rest are ordered by total, largest first, with
// ties in category enumeration order.
func CategoryExpenseTotals(txns []core.Transaction) []core.CategoryTotal {
	sums := make(map[core.Category]core.Money)
	for _, t := range txns {
		if t.Type == core.Expense {
			sums[t.Category] = sums[t.Category].Add(t.Amount)
		}
	}

	out := make([]core.CategoryTotal, 0, len(sums))
	for _, c := range core.Categories() {
		total := sums[c]
		if total.IsZero() {
			continue
		}
		info := core.Lookup(c)
		out = append(out, core.CategoryTotal{
			Category: c,
			Name:     info.Name,
			Color:    info.Color,
			Total:    total,
		})
	}
	slices.SortStableFunc(out, func(a, b core.CategoryTotal) int {
		return cmp.Compare(b.Total.Cents, a.Total.Cents)
	})
	return out
}

// TotalsByType computes income, expense and balance in a single pass over the
// same slice.
func TotalsByType(txns []core.Transaction) core.Totals {
	var totals core.Totals
	for _, t := range txns {
		switch t.Type {
		case core.Income:
			totals.Income = totals.Income.Add(t.Amount)
		case core.Expense:
			totals.Expense = totals.Expense.Add(t.Amount)
		}
	}
	totals.Balance = totals.Income.Sub(totals.Expense)
	return totals
}

var hundred = decimal.NewFromInt(100)

// PercentageOfTotal returns part/total*100, or 0 when total is zero.
func PercentageOfTotal(part, total core.Money) float64 {
	if total.IsZero() {
		return 0
	}
	return part.Decimal().Div(total.Decimal()).Mul(hundred).InexactFloat64()
}

// RecentTransactions returns the n latest transactions, newest first. Equal
// dates keep their relative order.
func RecentTransactions(txns []core.Transaction, n int) []core.Transaction {
	if n <= 0 {
		return []core.Transaction{}
	}
	sorted := byDateDesc(txns)
	if len(sorted) > n {
		sorted = sorted[:n:n]
	}
	return sorted
}

// FilterTransactions applies f and returns the matches newest first.
func FilterTransactions(txns []core.Transaction, f Filter) []core.Transaction {
	folder := cases.Fold()
	term := folder.String(f.SearchTerm)

	out := make([]core.Transaction, 0, len(txns))
	for _, t := range txns {
		if f.Type != "" && t.Type != f.Type {
			continue
		}
		if term != "" &&
			!strings.Contains(folder.String(t.Description), term) &&
			!strings.Contains(folder.String(string(t.Category)), term) {
			continue
		}
		out = append(out, t)
	}
	sortByDateDesc(out)
	return out
}

func byDateDesc(txns []core.Transaction) []core.Transaction {
	out := slices.Clone(txns)
	if out == nil {
		out = []core.Transaction{}
	}
	sortByDateDesc(out)
	return out
}

func sortByDateDesc(txns []core.Transaction) {
	slices.SortStableFunc(txns, func(a, b core.Transaction) int {
		return b.Date.Compare(a.Date.Time)
	})
}
