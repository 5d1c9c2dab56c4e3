package core

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used by every form surface.
const DateLayout = "2006-01-02"

type (
	// ID identifies an entry or note. IDs are unique and creation ordered.
	ID string

	Date struct {
		time.Time
	}

	// Entry is a dated, categorized monetary record belonging to one tracked
	// domain. Entries are immutable once created.
	Entry interface {
		EntryID() ID
		// Value is the amount the entry contributes to totals.
		Value() decimal.Decimal
		// Category is the closed-enum key of the entry within its domain.
		Category() string
		On() Date
	}
)

var (
	ErrRequired        = errors.New("required")
	ErrInvalidAmount   = errors.New("must be a positive number")
	ErrInvalidDate     = errors.New("must be a date formatted as YYYY-MM-DD")
	ErrUnknownCategory = errors.New("unknown category")
	ErrTooLong         = errors.New("too long (max 200 characters)")
)

// ValidationError reports which input field rejected an attempted creation.
type ValidationError struct {
	Field  string
	Reason error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Reason
}

func invalid(field string, reason error) error {
	return &ValidationError{Field: field, Reason: reason}
}

// NewDate creates a new Date from year, month, day
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar date in UTC.
func Today() Date {
	y, m, d := time.Now().UTC().Date()
	return NewDate(y, int(m), d)
}

// ParseDate parses a YYYY-MM-DD string into a Date.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, ErrRequired
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

// Month returns the month
func (d Date) Month() int {
	return int(d.Time.Month())
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// requireText trims s and rejects it when empty or longer than 200 characters.
func requireText(field, s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return invalid(field, ErrRequired)
	}
	if utf8.RuneCountInString(s) > 200 {
		return invalid(field, ErrTooLong)
	}
	return nil
}

func requirePositive(field string, v decimal.Decimal) error {
	if !v.IsPositive() {
		return invalid(field, ErrInvalidAmount)
	}
	return nil
}

func requireDate(field string, d Date) error {
	if err := d.Validate(); err != nil {
		return invalid(field, err)
	}
	return nil
}
