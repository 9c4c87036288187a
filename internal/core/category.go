package core

import (
	"errors"
	"fmt"
	"strings"
)

// Category is one of a closed set of classification keys.
type Category string

const (
	Food           Category = "food"
	Transportation Category = "transportation"
	Housing        Category = "housing"
	Utilities      Category = "utilities"
	Entertainment  Category = "entertainment"
	Healthcare     Category = "healthcare"
	Shopping       Category = "shopping"
	Education      Category = "education"
	Travel         Category = "travel"
	Salary         Category = "salary"
	Investment     Category = "investment"
	Gifts          Category = "gifts"
	Other          Category = "other"
)

// CategoryInfo is the display data of a category.
type CategoryInfo struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

var ErrUnknownCategory = errors.New("unknown category")

// categoryOrder is the enumeration order; aggregation ties fall back to it.
var categoryOrder = [...]Category{
	Food, Transportation, Housing, Utilities, Entertainment, Healthcare,
	Shopping, Education, Travel, Salary, Investment, Gifts, Other,
}

var registry = map[Category]CategoryInfo{
	Food:           {Name: "Food & Dining", Color: "#F59E0B"},
	Transportation: {Name: "Transportation", Color: "#3B82F6"},
	Housing:        {Name: "Housing", Color: "#8B5CF6"},
	Utilities:      {Name: "Utilities", Color: "#10B981"},
	Entertainment:  {Name: "Entertainment", Color: "#EC4899"},
	Healthcare:     {Name: "Healthcare", Color: "#14B8A6"},
	Shopping:       {Name: "Shopping", Color: "#F43F5E"},
	Education:      {Name: "Education", Color: "#6366F1"},
	Travel:         {Name: "Travel", Color: "#0EA5E9"},
	Salary:         {Name: "Salary", Color: "#22C55E"},
	Investment:     {Name: "Investment", Color: "#A855F7"},
	Gifts:          {Name: "Gifts", Color: "#F97316"},
	Other:          {Name: "Other", Color: "#6B7280"},
}

// Categories returns every key in enumeration order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder[:])
	return out
}

// Lookup returns the display data for c. Keys come from the closed set
// everywhere in the program, so an unknown key panics.
func Lookup(c Category) CategoryInfo {
	info, ok := registry[c]
	if !ok {
		panic(fmt.Sprintf("core: lookup of unknown category %q", string(c)))
	}
	return info
}

func (c Category) Valid() bool {
	_, ok := registry[c]
	return ok
}

func (c Category) Info() CategoryInfo { return Lookup(c) }

// ParseCategory accepts a key, case-insensitively.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}

// AllowedFor reports whether the entry form offers c for transactions of type t.
// Income takes salary, investment, gifts and other; expenses take everything
// except salary and investment.
func (c Category) AllowedFor(t TransactionType) bool {
	switch t {
	case Income:
		return c == Salary || c == Investment || c == Gifts || c == Other
	case Expense:
		return c.Valid() && c != Salary && c != Investment
	default:
		return false
	}
}

// CategoriesFor lists the keys selectable for t, in enumeration order.
func CategoriesFor(t TransactionType) []Category {
	var out []Category
	for _, c := range categoryOrder {
		if c.AllowedFor(t) {
			out = append(out, c)
		}
	}
	return out
}
