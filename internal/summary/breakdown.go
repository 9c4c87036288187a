package summary

import (
	"github.com/shopspring/decimal"

	"fintrack/internal/core"
)

// Share is a category total together with its share of all expenses.
type Share struct {
	core.CategoryTotal
	Percentage float64 `json:"percentage"`
}

// Breakdown is the expense chart: every non-zero category, the grand total,
// and the leading categories for the legend.
type Breakdown struct {
	Total      core.Money `json:"total"`
	Categories []Share    `json:"categories"`
	Top        []Share    `json:"top"`
}

// NewBreakdown builds a Breakdown from category totals as returned by
// CategoryExpenseTotals. Percentages are rounded to one decimal place; top
// caps the legend, with top <= 0 meaning no cap.
func NewBreakdown(totals []core.CategoryTotal, top int) Breakdown {
	var grand core.Money
	for _, ct := range totals {
		grand = grand.Add(ct.Total)
	}

	shares := make([]Share, len(totals))
	for i, ct := range totals {
		pct := decimal.NewFromFloat(PercentageOfTotal(ct.Total, grand)).Round(1)
		shares[i] = Share{CategoryTotal: ct, Percentage: pct.InexactFloat64()}
	}

	legend := shares
	if top > 0 && len(legend) > top {
		legend = legend[:top:top]
	}
	return Breakdown{Total: grand, Categories: shares, Top: legend}
}
