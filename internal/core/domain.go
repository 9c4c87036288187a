package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	Expense TransactionType = "expense"
	Income  TransactionType = "income"
)

const maxDescriptionRunes = 200

// DateLayout is the wire format of a Date.
const DateLayout = "2006-01-02"

type (
	TransactionType string

	// ID identifies a transaction. It is opaque to every consumer.
	ID string

	// Date is a calendar date; the time-of-day part is always midnight UTC.
	Date struct {
		time.Time
	}

	Transaction struct {
		ID          ID              `json:"id"`
		Amount      Money           `json:"amount"`
		Category    Category        `json:"category"`
		Description string          `json:"description"`
		Date        Date            `json:"date"`
		Type        TransactionType `json:"type"`
	}

	// TransactionInput is a transaction before the store assigns its id.
	TransactionInput struct {
		Amount      Money           `json:"amount"`
		Category    Category        `json:"category"`
		Description string          `json:"description"`
		Date        Date            `json:"date"`
		Type        TransactionType `json:"type"`
	}

	// Snapshot is an immutable view of the transaction collection at one version.
	Snapshot struct {
		Version      uint64
		Transactions []Transaction
	}
)

var (
	ErrInvalidDate       = errors.New("invalid date")
	ErrUnknownType       = errors.New("unknown transaction type")
	ErrEmptyDescription  = errors.New("empty description")
	ErrCategoryMismatch  = errors.New("category not allowed for transaction type")
	ErrDescriptionLength = errors.New("description too long (max 200 characters)")
)

func (t TransactionType) Valid() bool {
	return t == Expense || t == Income
}

// ParseTransactionType accepts the wire names, case-insensitively.
func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
	}
	return t, nil
}

// NewDate creates a new Date from year, month, day
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses an ISO calendar date (YYYY-MM-DD).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{Time: t}, nil
}

// MustDate is ParseDate for literals known to be valid.
func MustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (d Date) Validate() error {
	if d.IsZero() {
		return fmt.Errorf("%w: date cannot be zero", ErrInvalidDate)
	}
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidDate, string(b))
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// WithID attaches an id, producing a storable transaction.
func (in TransactionInput) WithID(id ID) Transaction {
	return Transaction{
		ID:          id,
		Amount:      in.Amount,
		Category:    in.Category,
		Description: in.Description,
		Date:        in.Date,
		Type:        in.Type,
	}
}

// Input drops the id.
func (t Transaction) Input() TransactionInput {
	return TransactionInput{
		Amount:      t.Amount,
		Category:    t.Category,
		Description: t.Description,
		Date:        t.Date,
		Type:        t.Type,
	}
}

// Validate performs the checks the entry form applies before anything reaches
// the store. The store itself trusts its callers.
func (in TransactionInput) Validate() error {
	if !in.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownType, in.Type)
	}
	if err := in.Amount.Validate(); err != nil {
		return err
	}
	if !in.Category.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, in.Category)
	}
	if !in.Category.AllowedFor(in.Type) {
		return fmt.Errorf("%w: %s for %s", ErrCategoryMismatch, in.Category, in.Type)
	}
	if len(strings.TrimSpace(in.Description)) == 0 {
		return ErrEmptyDescription
	}
	if utf8.RuneCountInString(in.Description) > maxDescriptionRunes {
		return ErrDescriptionLength
	}
	return in.Date.Validate()
}
