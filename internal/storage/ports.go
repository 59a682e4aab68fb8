// Package storage defines the persistence port of budgetbook. Two adapters
// implement it: a SQLite-backed store and an in-memory store used for
// tests and as a throwaway backend.
package storage

import (
	"context"

	"budgetbook/internal/core"
)

// Store is the persistence gateway. Reads return every record of a
// collection in no guaranteed order; callers filter and sort in memory.
// Deleting an absent key is a silent no-op on every collection.
type Store interface {
	// Categories returns all categories.
	Categories(ctx context.Context) ([]core.Category, error)
	// CreateCategory inserts a category and returns it with its assigned id.
	CreateCategory(ctx context.Context, name string) (core.Category, error)
	// RenameCategory updates the category row and rewrites the category name
	// of every matching transaction in a single transaction scope. It
	// returns the number of transactions rewritten. A missing id is a no-op.
	RenameCategory(ctx context.Context, id int64, newName string) (int, error)
	// DeleteCategory removes a category row only, never its transactions.
	DeleteCategory(ctx context.Context, id int64) error

	// Transactions returns all transactions.
	Transactions(ctx context.Context) ([]core.Transaction, error)
	// CreateTransaction inserts a transaction and returns it with its id.
	CreateTransaction(ctx context.Context, t core.Transaction) (core.Transaction, error)
	// PutTransaction upserts by the explicit id carried by t.
	PutTransaction(ctx context.Context, t core.Transaction) error
	// DeleteTransaction removes a transaction by id.
	DeleteTransaction(ctx context.Context, id int64) error

	// Budgets returns all budgets.
	Budgets(ctx context.Context) ([]core.Budget, error)
	// PutBudget upserts by the budget's composite id.
	PutBudget(ctx context.Context, b core.Budget) error
	// DeleteBudget removes a budget by composite id.
	DeleteBudget(ctx context.Context, id string) error

	Close() error
}
