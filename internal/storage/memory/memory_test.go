package memory

import (
	"context"
	"testing"

	"budgetbook/internal/core"
	"budgetbook/internal/storage"
)

var _ storage.Store = (*Store)(nil)

func TestSeedCategories(t *testing.T) {
	s := New()
	cats, err := s.Categories(context.Background())
	if err != nil {
		t.Fatalf("categories: %v", err)
	}
	if len(cats) != len(core.DefaultCategories) {
		t.Fatalf("expected %d seeded categories, got %d", len(core.DefaultCategories), len(cats))
	}
	if cats[0].Name != "Food" || cats[0].ID != 1 {
		t.Fatalf("unexpected first category: %+v", cats[0])
	}
}

func TestRenameCategoryCascade(t *testing.T) {
	ctx := context.Background()
	s := NewEmpty()

	cat, _ := s.CreateCategory(ctx, "Food")
	s.CreateTransaction(ctx, core.Transaction{Type: core.Expense, Date: "2024-03-01", Category: "Food"})
	s.CreateTransaction(ctx, core.Transaction{Type: core.Expense, Date: "2024-03-02", Category: "Transport"})

	rewritten, err := s.RenameCategory(ctx, cat.ID, "Groceries")
	if err != nil {
		t.Fatalf("rename: %v", err)
	}
	if rewritten != 1 {
		t.Fatalf("expected 1 rewritten transaction, got %d", rewritten)
	}

	txs, _ := s.Transactions(ctx)
	if txs[0].Category != "Groceries" || txs[1].Category != "Transport" {
		t.Fatalf("cascade rewrote the wrong rows: %+v", txs)
	}

	// missing id is a silent no-op
	if n, err := s.RenameCategory(ctx, 999, "Whatever"); err != nil || n != 0 {
		t.Fatalf("rename of missing id: n=%d err=%v", n, err)
	}
}

func TestPutTransactionUpsert(t *testing.T) {
	ctx := context.Background()
	s := NewEmpty()

	created, _ := s.CreateTransaction(ctx, core.Transaction{
		Type: core.Expense, Amount: core.Money{Cents: 100}, Date: "2024-03-01", Category: "Food",
	})
	created.Amount.Cents = 250
	created.Description = "edited"
	if err := s.PutTransaction(ctx, created); err != nil {
		t.Fatalf("put: %v", err)
	}

	txs, _ := s.Transactions(ctx)
	if len(txs) != 1 {
		t.Fatalf("upsert must not duplicate, got %d records", len(txs))
	}
	if txs[0].ID != created.ID || txs[0].Amount.Cents != 250 || txs[0].Description != "edited" {
		t.Fatalf("unexpected record after edit: %+v", txs[0])
	}
}

func TestDeleteMissingIsNoOp(t *testing.T) {
	ctx := context.Background()
	s := NewEmpty()
	s.CreateTransaction(ctx, core.Transaction{Type: core.Income, Date: "2024-01-01", Category: "Other"})

	if err := s.DeleteTransaction(ctx, 42); err != nil {
		t.Fatalf("delete of missing id must not fail: %v", err)
	}
	txs, _ := s.Transactions(ctx)
	if len(txs) != 1 {
		t.Fatalf("collection must be unchanged, got %d records", len(txs))
	}

	if err := s.DeleteBudget(ctx, "2024-01-Nope"); err != nil {
		t.Fatalf("delete of missing budget must not fail: %v", err)
	}
}

func TestPutBudgetUpsert(t *testing.T) {
	ctx := context.Background()
	s := NewEmpty()

	first := core.NewBudget("2024-03", "Food", core.Money{Cents: 10000})
	second := core.NewBudget("2024-03", "Food", core.Money{Cents: 20000})
	s.PutBudget(ctx, first)
	s.PutBudget(ctx, second)

	budgets, _ := s.Budgets(ctx)
	if len(budgets) != 1 {
		t.Fatalf("same pair must stay one record, got %d", len(budgets))
	}
	if budgets[0].Limit.Cents != 20000 {
		t.Fatalf("latest limit must win, got %d", budgets[0].Limit.Cents)
	}
}
