package core

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	Income  TxType = "income"
	Expense TxType = "expense"
)

type (
	// TxType distinguishes money coming in from money going out.
	TxType string

	// Date is a calendar day in ISO YYYY-MM-DD form. Keeping the string
	// representation means lexicographic order is chronological order.
	Date string

	Money struct {
		Cents int64
	}

	Category struct {
		ID   int64
		Name string
	}

	Transaction struct {
		ID          int64
		Type        TxType
		Amount      Money
		Date        Date
		Category    string // denormalized category name, not a foreign key
		Description string
	}

	// Budget is a spending limit for one (month, category) pair. The ID is
	// composed from both parts, so saving the same pair again overwrites.
	Budget struct {
		ID       string
		Month    Period
		Category string
		Limit    Money
	}
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidDate   = errors.New("invalid date")
	ErrInvalidType   = errors.New("invalid transaction type")
	ErrInvalidPeriod = errors.New("invalid period")
	ErrEmptyName     = errors.New("empty category name")
	ErrNotFound      = errors.New("record not found")
	ErrDeclined      = errors.New("operation declined")
)

func (t TxType) Validate() error {
	switch t {
	case Income, Expense:
		return nil
	}
	return ErrInvalidType
}

func (d Date) Validate() error {
	if _, err := time.Parse("2006-01-02", string(d)); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// Month returns the YYYY-MM prefix of the date.
func (d Date) Month() Period {
	if len(d) < 7 {
		return Period(d)
	}
	return Period(d[:7])
}

func (m Money) Validate() error {
	if m.Cents < 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (c Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	return nil
}

func (t Transaction) Validate() error {
	if err := t.Type.Validate(); err != nil {
		return err
	}
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	if err := t.Date.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyName
	}
	return nil
}

// BudgetID composes the deterministic budget key "<month>-<categoryName>".
func BudgetID(month Period, category string) string {
	return fmt.Sprintf("%s-%s", month, category)
}

// NewBudget builds a budget for the given pair with its composite ID set.
func NewBudget(month Period, category string, limit Money) Budget {
	return Budget{
		ID:       BudgetID(month, category),
		Month:    month,
		Category: category,
		Limit:    limit,
	}
}

func (b Budget) Validate() error {
	if err := b.Month.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(b.Category) == "" {
		return ErrEmptyName
	}
	if err := b.Limit.Validate(); err != nil {
		return err
	}
	return nil
}

// DefaultCategories are seeded on first run. The store never enforces name
// uniqueness, so these exist only as a starting set.
var DefaultCategories = []string{
	"Food",
	"Transport",
	"Leisure",
	"Utilities",
	"Health",
	"Education",
	"Other",
}
