package core

// CategoryTotal represents an expense amount aggregated by category.
type CategoryTotal struct {
	Category Category `json:"category"`
	Name     string   `json:"name"`
	Color    string   `json:"color"`
	Total    Money    `json:"total"`
}

// Totals is the income/expense/balance triple of one snapshot.
type Totals struct {
	Income  Money `json:"income"`
	Expense Money `json:"expense"`
	Balance Money `json:"balance"`
}

const (
	TrendPositive = "positive"
	TrendNegative = "negative"
)

// Trend is how the balance card is coloured.
func (t Totals) Trend() string {
	if t.Balance.Cents >= 0 {
		return TrendPositive
	}
	return TrendNegative
}
