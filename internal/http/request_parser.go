package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"fintrack/internal/core"
	"fintrack/internal/summary"
)

const maxBodyBytes = 64 << 10

// errMalformedBody marks requests whose body is not a transaction object at
// all, as opposed to one that fails validation.
var errMalformedBody = errors.New("malformed request body")

// transactionRequest mirrors the entry form. Every field arrives as text so
// that amounts like "12,50" are accepted the way the form accepts them.
type transactionRequest struct {
	Amount      json.RawMessage `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
	Type        string          `json:"type"`
}

// ParseTransactionInput reads and validates a transaction from the request
// body. Errors wrapping errMalformedBody are client syntax errors; any other
// error is a validation failure.
func ParseTransactionInput(r *http.Request) (core.TransactionInput, error) {
	var req transactionRequest
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return core.TransactionInput{}, fmt.Errorf("%w: %v", errMalformedBody, err)
	}
	return req.input()
}

func (req transactionRequest) input() (core.TransactionInput, error) {
	typ, err := core.ParseTransactionType(req.Type)
	if err != nil {
		return core.TransactionInput{}, err
	}

	amount, err := parseAmountField(req.Amount)
	if err != nil {
		return core.TransactionInput{}, err
	}

	category, err := core.ParseCategory(req.Category)
	if err != nil {
		return core.TransactionInput{}, err
	}

	date, err := core.ParseDate(req.Date)
	if err != nil {
		return core.TransactionInput{}, err
	}

	in := core.TransactionInput{
		Amount:      amount,
		Category:    category,
		Description: strings.TrimSpace(req.Description),
		Date:        date,
		Type:        typ,
	}
	if err := in.Validate(); err != nil {
		return core.TransactionInput{}, err
	}
	return in, nil
}

// parseAmountField accepts a JSON number or a string in form notation.
func parseAmountField(raw json.RawMessage) (core.Money, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return core.Money{}, fmt.Errorf("%w: amount is required", core.ErrInvalidAmount)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		s = string(raw)
	}
	return core.ParseAmount(s)
}

// ParseFilter reads the type and q query parameters. "all" and an empty type
// both mean no type filter.
func ParseFilter(query url.Values) (summary.Filter, error) {
	f := summary.Filter{SearchTerm: strings.TrimSpace(query.Get("q"))}

	switch v := strings.TrimSpace(query.Get("type")); strings.ToLower(v) {
	case "", "all":
	default:
		t, err := core.ParseTransactionType(v)
		if err != nil {
			return summary.Filter{}, err
		}
		f.Type = t
	}
	return f, nil
}

// ParseTypeParam reads an optional type query parameter.
func ParseTypeParam(query url.Values) (core.TransactionType, error) {
	v := strings.TrimSpace(query.Get("type"))
	if v == "" {
		return "", nil
	}
	return core.ParseTransactionType(v)
}

// ParsePositiveInt reads name from query, returning def when it is absent.
// Values outside [1, max] are rejected.
func ParsePositiveInt(query url.Values, name string, def, max int) (int, error) {
	v := strings.TrimSpace(query.Get(name))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 || n > max {
		return 0, fmt.Errorf("invalid %s %q: must be between 1 and %d", name, v, max)
	}
	return n, nil
}
