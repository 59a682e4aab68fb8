package core

import (
	"errors"
	"testing"
)

func TestTransactionValidate(t *testing.T) {
	valid := Transaction{Type: Expense, Amount: Money{Cents: 100}, Date: "2024-03-01", Category: "Food"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid transaction rejected: %v", err)
	}

	cases := []struct {
		name string
		mut  func(tx *Transaction)
		want error
	}{
		{"bad type", func(tx *Transaction) { tx.Type = "transfer" }, ErrInvalidType},
		{"negative amount", func(tx *Transaction) { tx.Amount.Cents = -1 }, ErrInvalidAmount},
		{"bad date", func(tx *Transaction) { tx.Date = "03/01/2024" }, ErrInvalidDate},
		{"blank category", func(tx *Transaction) { tx.Category = "  " }, ErrEmptyName},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tx := valid
			tc.mut(&tx)
			if err := tx.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestBudgetID(t *testing.T) {
	if got := BudgetID("2024-03", "Food"); got != "2024-03-Food" {
		t.Fatalf("expected 2024-03-Food, got %q", got)
	}
	b := NewBudget("2024-03", "Food", Money{Cents: 10000})
	if b.ID != "2024-03-Food" || b.Month != "2024-03" || b.Category != "Food" {
		t.Fatalf("unexpected budget: %+v", b)
	}
}

func TestPeriodValidate(t *testing.T) {
	if err := Period("2024-03").Validate(); err != nil {
		t.Fatalf("valid period rejected: %v", err)
	}
	for _, bad := range []Period{"2024", "2024-13", "03-2024", "not-a-month", ""} {
		if err := bad.Validate(); err == nil {
			t.Fatalf("%q should be invalid", bad)
		}
	}
}

func TestDateMonth(t *testing.T) {
	if got := Date("2024-03-15").Month(); got != "2024-03" {
		t.Fatalf("expected 2024-03, got %q", got)
	}
}
