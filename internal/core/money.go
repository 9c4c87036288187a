// Package core holds the domain types of the tracker: transactions, money,
// calendar dates and the category registry.
//
// Money is kept in integer cents so that sums never drift; shopspring/decimal
// is used at the edges for parsing, formatting and division.
package core

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is a currency-agnostic amount in hundredths.
type Money struct {
	Cents int64
}

var ErrInvalidAmount = errors.New("invalid amount")

// MaxAmountCents bounds a single amount at 100 billion. Sums of up to
// 900,000 such amounts still fit in an int64.
const MaxAmountCents int64 = 1e13

var maxCents = decimal.NewFromInt(MaxAmountCents)

// Cents builds a Money from a cent count.
func Cents(c int64) Money {
	return Money{Cents: c}
}

// ParseAmount converts a decimal string to Money with half-up rounding on the
// third decimal place.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators. Signs,
// exponents and anything that is not a plain decimal are rejected; zero is
// allowed.
//
// Examples:
//
//	ParseAmount("12.34")  -> 1234 cents
//	ParseAmount("12,345") -> 1235 cents
//	ParseAmount("-1")     -> ErrInvalidAmount
func ParseAmount(s string) (Money, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" || strings.ContainsAny(s, "+-eE") {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return FromDecimal(d)
}

// FromDecimal rounds d to cents.
func FromDecimal(d decimal.Decimal) (Money, error) {
	shifted := d.Round(2).Shift(2)
	if shifted.Abs().GreaterThan(maxCents) {
		return Money{}, fmt.Errorf("%w: %s out of range", ErrInvalidAmount, d.String())
	}
	return Money{Cents: shifted.IntPart()}, nil
}

// Validate rejects negative amounts; a transaction amount is a magnitude.
func (m Money) Validate() error {
	if m.Cents < 0 {
		return fmt.Errorf("%w: must not be negative", ErrInvalidAmount)
	}
	if m.Cents > MaxAmountCents {
		return fmt.Errorf("%w: exceeds %s", ErrInvalidAmount, Cents(MaxAmountCents))
	}
	return nil
}

func (m Money) Add(o Money) Money { return Money{Cents: m.Cents + o.Cents} }
func (m Money) Sub(o Money) Money { return Money{Cents: m.Cents - o.Cents} }
func (m Money) IsZero() bool      { return m.Cents == 0 }

// Abs drops the sign, as the summary cards do when showing a negative balance.
func (m Money) Abs() Money {
	if m.Cents < 0 {
		return Money{Cents: -m.Cents}
	}
	return m
}

// Decimal returns the exact decimal value.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.Cents, -2)
}

// Float64 returns the value for display purposes only.
// Note: Use cents for calculations to avoid floating-point precision issues.
func (m Money) Float64() float64 {
	return m.Decimal().InexactFloat64()
}

// String formats the amount for display, e.g. "$85.50" or "-$12.00".
func (m Money) String() string {
	if m.Cents < 0 {
		return "-$" + m.Abs().Decimal().StringFixed(2)
	}
	return "$" + m.Decimal().StringFixed(2)
}

// MarshalJSON writes a JSON number with two decimals.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal().StringFixed(2)), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal string.
func (m *Money) UnmarshalJSON(b []byte) error {
	b = bytes.Trim(bytes.TrimSpace(b), `"`)
	d, err := decimal.NewFromString(string(b))
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, string(b))
	}
	parsed, err := FromDecimal(d)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
