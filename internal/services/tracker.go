// Package services holds the Tracker, the domain and aggregation layer
// sitting between the persistence store and any presentation.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"budgetbook/internal/core"
	"budgetbook/internal/storage"
)

// Publisher notifies external consumers of committed changes. A nil
// publisher disables notifications.
type Publisher interface {
	PublishChange(ctx context.Context, entity, op, id string) error
}

// Tracker owns the current reporting period and performs every CRUD and
// aggregation operation against the store. Derived views are recomputed on
// read, so a period change automatically invalidates them all.
type Tracker struct {
	store   storage.Store
	confirm Confirmer
	events  Publisher

	mu     sync.RWMutex
	period core.Period
}

// NewTracker builds a tracker starting at the local current month. events
// may be nil.
func NewTracker(store storage.Store, confirm Confirmer, events Publisher) *Tracker {
	return &Tracker{
		store:   store,
		confirm: confirm,
		events:  events,
		period:  core.CurrentPeriod(),
	}
}

// Period returns the active reporting month.
func (t *Tracker) Period() core.Period {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.period
}

// SetPeriod replaces the active reporting month. Every derived view reflects
// the new period on its next read.
func (t *Tracker) SetPeriod(p core.Period) error {
	if err := p.Validate(); err != nil {
		return err
	}
	t.mu.Lock()
	t.period = p
	t.mu.Unlock()
	slog.Info("Reporting period changed", "period", p)
	return nil
}

func (t *Tracker) Close() error {
	return t.store.Close()
}

// Categories lists all categories in store order.
func (t *Tracker) Categories(ctx context.Context) ([]core.Category, error) {
	return t.store.Categories(ctx)
}

// AddCategory creates a category. Blank names are rejected; duplicate names
// are permitted by the data model (see DESIGN.md on the resulting ambiguity).
func (t *Tracker) AddCategory(ctx context.Context, name string) (core.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return core.Category{}, core.ErrEmptyName
	}
	c, err := t.store.CreateCategory(ctx, name)
	if err != nil {
		return core.Category{}, fmt.Errorf("add category: %w", err)
	}
	t.publish(ctx, "category", "create", strconv.FormatInt(c.ID, 10))
	return c, nil
}

// RenameCategory renames a category and rewrites the denormalized name on
// every transaction that carried it, atomically. Renaming to the same name
// is a no-op with zero writes. A vanished id is a silent no-op.
func (t *Tracker) RenameCategory(ctx context.Context, id int64, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return core.ErrEmptyName
	}

	cats, err := t.store.Categories(ctx)
	if err != nil {
		return fmt.Errorf("rename category: %w", err)
	}
	var current *core.Category
	for i := range cats {
		if cats[i].ID == id {
			current = &cats[i]
			break
		}
	}
	if current == nil {
		slog.WarnContext(ctx, "Rename of missing category skipped", "id", id)
		return nil
	}
	if current.Name == newName {
		return nil
	}

	rewritten, err := t.store.RenameCategory(ctx, id, newName)
	if err != nil {
		return fmt.Errorf("rename category: %w", err)
	}
	slog.InfoContext(ctx, "Category rename cascade finished",
		"id", id, "new_name", newName, "transactions_rewritten", rewritten)
	t.publish(ctx, "category", "update", strconv.FormatInt(id, 10))
	return nil
}

// DeleteCategory removes a category and every transaction referencing its
// name, reporting how many transactions were removed. The transaction
// deletes are independent and issued as a batch; the category row is removed
// strictly after all of them settle. Declining the confirmation aborts with
// no side effect.
func (t *Tracker) DeleteCategory(ctx context.Context, id int64) (int, error) {
	cats, err := t.store.Categories(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete category: %w", err)
	}
	var name string
	found := false
	for _, c := range cats {
		if c.ID == id {
			name = c.Name
			found = true
			break
		}
	}
	if !found {
		slog.WarnContext(ctx, "Delete of missing category skipped", "id", id)
		return 0, nil
	}

	ok, err := t.confirm.Confirm(ctx,
		fmt.Sprintf("Delete category %q and all its transactions?", name))
	if err != nil {
		return 0, fmt.Errorf("confirm delete: %w", err)
	}
	if !ok {
		return 0, core.ErrDeclined
	}

	txs, err := t.store.Transactions(ctx)
	if err != nil {
		return 0, fmt.Errorf("delete category: %w", err)
	}

	var matching []int64
	for _, tx := range txs {
		if tx.Category == name {
			matching = append(matching, tx.ID)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, txID := range matching {
		g.Go(func() error {
			return t.store.DeleteTransaction(gctx, txID)
		})
	}
	if err := g.Wait(); err != nil {
		return 0, fmt.Errorf("delete transactions of category %q: %w", name, err)
	}

	if err := t.store.DeleteCategory(ctx, id); err != nil {
		return len(matching), fmt.Errorf("delete category: %w", err)
	}

	slog.InfoContext(ctx, "Category deleted",
		"id", id, "name", name, "transactions_removed", len(matching))
	t.publish(ctx, "category", "delete", strconv.FormatInt(id, 10))
	return len(matching), nil
}

// Transactions lists transactions matching the search text, newest first.
func (t *Tracker) Transactions(ctx context.Context, search string) ([]core.Transaction, error) {
	txs, err := t.store.Transactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return core.FilterTransactions(txs, search), nil
}

// AddTransaction records a new transaction. The category is a free string;
// the store never checks it against the category collection.
func (t *Tracker) AddTransaction(ctx context.Context, tx core.Transaction) (core.Transaction, error) {
	if err := tx.Validate(); err != nil {
		return core.Transaction{}, err
	}
	created, err := t.store.CreateTransaction(ctx, tx)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("add transaction: %w", err)
	}
	t.publish(ctx, "transaction", "create", strconv.FormatInt(created.ID, 10))
	return created, nil
}

// UpdateTransaction replaces all fields of the transaction with the given
// id. Updating a transaction that no longer exists is a silent no-op.
func (t *Tracker) UpdateTransaction(ctx context.Context, id int64, tx core.Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}

	existing, err := t.store.Transactions(ctx)
	if err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	found := false
	for _, e := range existing {
		if e.ID == id {
			found = true
			break
		}
	}
	if !found {
		slog.WarnContext(ctx, "Update of missing transaction skipped", "id", id)
		return nil
	}

	tx.ID = id
	if err := t.store.PutTransaction(ctx, tx); err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	t.publish(ctx, "transaction", "update", strconv.FormatInt(id, 10))
	return nil
}

// DeleteTransaction removes one transaction. A missing id is a no-op.
func (t *Tracker) DeleteTransaction(ctx context.Context, id int64) error {
	ok, err := t.confirm.Confirm(ctx, fmt.Sprintf("Delete transaction %d?", id))
	if err != nil {
		return fmt.Errorf("confirm delete: %w", err)
	}
	if !ok {
		return core.ErrDeclined
	}

	if err := t.store.DeleteTransaction(ctx, id); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	t.publish(ctx, "transaction", "delete", strconv.FormatInt(id, 10))
	return nil
}

// SaveBudget upserts the budget for (current period, category). Saving the
// same pair again overwrites the previous limit.
func (t *Tracker) SaveBudget(ctx context.Context, category string, limit core.Money) (core.Budget, error) {
	b := core.NewBudget(t.Period(), strings.TrimSpace(category), limit)
	if err := b.Validate(); err != nil {
		return core.Budget{}, err
	}
	if err := t.store.PutBudget(ctx, b); err != nil {
		return core.Budget{}, fmt.Errorf("save budget: %w", err)
	}
	t.publish(ctx, "budget", "update", b.ID)
	return b, nil
}

// DeleteBudget removes a budget by its composite id.
func (t *Tracker) DeleteBudget(ctx context.Context, id string) error {
	ok, err := t.confirm.Confirm(ctx, fmt.Sprintf("Delete budget %s?", id))
	if err != nil {
		return fmt.Errorf("confirm delete: %w", err)
	}
	if !ok {
		return core.ErrDeclined
	}

	if err := t.store.DeleteBudget(ctx, id); err != nil {
		return fmt.Errorf("delete budget: %w", err)
	}
	t.publish(ctx, "budget", "delete", id)
	return nil
}

// BudgetReport joins the current period's budgets with actual spending.
func (t *Tracker) BudgetReport(ctx context.Context) ([]core.BudgetRow, error) {
	budgets, err := t.store.Budgets(ctx)
	if err != nil {
		return nil, fmt.Errorf("budget report: %w", err)
	}
	txs, err := t.store.Transactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("budget report: %w", err)
	}
	return core.BuildBudgetRows(t.Period(), budgets, txs), nil
}

// Dashboard computes the current period's KPIs and expense breakdown.
func (t *Tracker) Dashboard(ctx context.Context) (core.Dashboard, error) {
	txs, err := t.store.Transactions(ctx)
	if err != nil {
		return core.Dashboard{}, fmt.Errorf("dashboard: %w", err)
	}
	budgets, err := t.store.Budgets(ctx)
	if err != nil {
		return core.Dashboard{}, fmt.Errorf("dashboard: %w", err)
	}
	return core.BuildDashboard(t.Period(), txs, budgets), nil
}

// BalanceTrend returns every month's net balance, oldest first. The trend
// always spans all transactions, not just the current period.
func (t *Tracker) BalanceTrend(ctx context.Context) ([]core.TrendPoint, error) {
	txs, err := t.store.Transactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("balance trend: %w", err)
	}
	return core.BuildTrend(txs), nil
}

// publish notifies the events sink, never failing the operation: the write
// already committed locally.
func (t *Tracker) publish(ctx context.Context, entity, op, id string) {
	if t.events == nil {
		return
	}
	if err := t.events.PublishChange(ctx, entity, op, id); err != nil {
		slog.ErrorContext(ctx, "Failed to publish change event",
			"entity", entity, "op", op, "id", id, "error", err)
	}
}
