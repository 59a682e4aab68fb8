// Package sqlite implements storage.Store on a local SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"budgetbook/internal/core"

	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

// Open opens (creating on first use) the database at dbPath and runs the
// schema migrations. A store that cannot be opened is fatal to the caller;
// there is no retry.
func Open(dbPath string) (*Store, error) {
	if dir := filepath.Dir(dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// SQLite allows one writer at a time; a single pooled connection keeps
	// concurrent writers queued instead of hitting SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) Categories(ctx context.Context) ([]core.Category, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM categories`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var cats []core.Category
	for rows.Next() {
		var c core.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		cats = append(cats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return cats, nil
}

func (s *Store) CreateCategory(ctx context.Context, name string) (core.Category, error) {
	res, err := s.db.ExecContext(ctx, `INSERT INTO categories (name) VALUES (?)`, name)
	if err != nil {
		return core.Category{}, fmt.Errorf("insert category: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return core.Category{}, fmt.Errorf("category insert id: %w", err)
	}

	slog.InfoContext(ctx, "Category created", "id", id, "name", name)
	return core.Category{ID: id, Name: name}, nil
}

// RenameCategory updates the category row and every transaction carrying the
// old name inside one database transaction, so readers never observe the
// half-renamed state.
func (s *Store) RenameCategory(ctx context.Context, id int64, newName string) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin rename transaction: %w", err)
	}
	defer tx.Rollback()

	var oldName string
	err = tx.QueryRowContext(ctx, `SELECT name FROM categories WHERE id = ?`, id).Scan(&oldName)
	if err == sql.ErrNoRows {
		// vanished category, nothing to rename
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("lookup category %d: %w", id, err)
	}

	if _, err := tx.ExecContext(ctx, `UPDATE categories SET name = ? WHERE id = ?`, newName, id); err != nil {
		return 0, fmt.Errorf("update category %d: %w", id, err)
	}

	res, err := tx.ExecContext(ctx, `UPDATE transactions SET category = ? WHERE category = ?`, newName, oldName)
	if err != nil {
		return 0, fmt.Errorf("rewrite transactions: %w", err)
	}
	rewritten, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rename rows affected: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit rename: %w", err)
	}

	slog.InfoContext(ctx, "Category renamed",
		"id", id, "old_name", oldName, "new_name", newName, "transactions_rewritten", rewritten)
	return int(rewritten), nil
}

func (s *Store) DeleteCategory(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM categories WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete category %d: %w", id, err)
	}
	return nil
}

func (s *Store) Transactions(ctx context.Context) ([]core.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, type, amount_cents, date, category, description FROM transactions`)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var txs []core.Transaction
	for rows.Next() {
		var t core.Transaction
		if err := rows.Scan(&t.ID, &t.Type, &t.Amount.Cents, &t.Date, &t.Category, &t.Description); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		txs = append(txs, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return txs, nil
}

func (s *Store) CreateTransaction(ctx context.Context, t core.Transaction) (core.Transaction, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO transactions (type, amount_cents, date, category, description)
		 VALUES (?, ?, ?, ?, ?)`,
		t.Type, t.Amount.Cents, t.Date, t.Category, t.Description)
	if err != nil {
		return core.Transaction{}, fmt.Errorf("insert transaction: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return core.Transaction{}, fmt.Errorf("transaction insert id: %w", err)
	}
	t.ID = id

	slog.InfoContext(ctx, "Transaction created",
		"id", t.ID, "type", t.Type, "amount_cents", t.Amount.Cents,
		"date", t.Date, "category", t.Category)
	return t, nil
}

func (s *Store) PutTransaction(ctx context.Context, t core.Transaction) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO transactions (id, type, amount_cents, date, category, description)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		   type = excluded.type,
		   amount_cents = excluded.amount_cents,
		   date = excluded.date,
		   category = excluded.category,
		   description = excluded.description`,
		t.ID, t.Type, t.Amount.Cents, t.Date, t.Category, t.Description)
	if err != nil {
		return fmt.Errorf("upsert transaction %d: %w", t.ID, err)
	}
	return nil
}

func (s *Store) DeleteTransaction(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete transaction %d: %w", id, err)
	}
	return nil
}

func (s *Store) Budgets(ctx context.Context) ([]core.Budget, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, month, category, limit_cents FROM budgets`)
	if err != nil {
		return nil, fmt.Errorf("query budgets: %w", err)
	}
	defer rows.Close()

	var budgets []core.Budget
	for rows.Next() {
		var b core.Budget
		if err := rows.Scan(&b.ID, &b.Month, &b.Category, &b.Limit.Cents); err != nil {
			return nil, fmt.Errorf("scan budget: %w", err)
		}
		budgets = append(budgets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate budgets: %w", err)
	}
	return budgets, nil
}

func (s *Store) PutBudget(ctx context.Context, b core.Budget) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO budgets (id, month, category, limit_cents)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET
		   month = excluded.month,
		   category = excluded.category,
		   limit_cents = excluded.limit_cents`,
		b.ID, b.Month, b.Category, b.Limit.Cents)
	if err != nil {
		return fmt.Errorf("upsert budget %s: %w", b.ID, err)
	}

	slog.InfoContext(ctx, "Budget saved",
		"id", b.ID, "month", b.Month, "category", b.Category, "limit_cents", b.Limit.Cents)
	return nil
}

func (s *Store) DeleteBudget(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM budgets WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete budget %s: %w", id, err)
	}
	return nil
}
