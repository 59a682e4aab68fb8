// Package memory implements storage.Store with in-process maps. It backs
// tests and the throwaway DATA_BACKEND=memory mode, with the same observable
// semantics as the sqlite store.
package memory

import (
	"context"
	"sync"

	"budgetbook/internal/core"
)

type Store struct {
	mu sync.Mutex

	categories   []core.Category
	transactions []core.Transaction
	budgets      []core.Budget

	nextCategoryID    int64
	nextTransactionID int64
}

// New returns a store seeded with the default categories, matching what the
// sqlite migration seeds on first run.
func New() *Store {
	s := &Store{nextCategoryID: 1, nextTransactionID: 1}
	for _, name := range core.DefaultCategories {
		s.categories = append(s.categories, core.Category{ID: s.nextCategoryID, Name: name})
		s.nextCategoryID++
	}
	return s
}

// NewEmpty returns a store without seed data, for tests that want full
// control over the category set.
func NewEmpty() *Store {
	return &Store{nextCategoryID: 1, nextTransactionID: 1}
}

func (s *Store) Close() error { return nil }

func (s *Store) Categories(_ context.Context) ([]core.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Category(nil), s.categories...), nil
}

func (s *Store) CreateCategory(_ context.Context, name string) (core.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := core.Category{ID: s.nextCategoryID, Name: name}
	s.nextCategoryID++
	s.categories = append(s.categories, c)
	return c, nil
}

func (s *Store) RenameCategory(_ context.Context, id int64, newName string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, c := range s.categories {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0, nil
	}

	oldName := s.categories[idx].Name
	s.categories[idx].Name = newName

	rewritten := 0
	for i, t := range s.transactions {
		if t.Category == oldName {
			s.transactions[i].Category = newName
			rewritten++
		}
	}
	return rewritten, nil
}

func (s *Store) DeleteCategory(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, c := range s.categories {
		if c.ID == id {
			s.categories = append(s.categories[:i], s.categories[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *Store) Transactions(_ context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Transaction(nil), s.transactions...), nil
}

func (s *Store) CreateTransaction(_ context.Context, t core.Transaction) (core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = s.nextTransactionID
	s.nextTransactionID++
	s.transactions = append(s.transactions, t)
	return t, nil
}

func (s *Store) PutTransaction(_ context.Context, t core.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.transactions {
		if existing.ID == t.ID {
			s.transactions[i] = t
			return nil
		}
	}
	s.transactions = append(s.transactions, t)
	if t.ID >= s.nextTransactionID {
		s.nextTransactionID = t.ID + 1
	}
	return nil
}

func (s *Store) DeleteTransaction(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.transactions {
		if t.ID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *Store) Budgets(_ context.Context) ([]core.Budget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Budget(nil), s.budgets...), nil
}

func (s *Store) PutBudget(_ context.Context, b core.Budget) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.budgets {
		if existing.ID == b.ID {
			s.budgets[i] = b
			return nil
		}
	}
	s.budgets = append(s.budgets, b)
	return nil
}

func (s *Store) DeleteBudget(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.budgets {
		if b.ID == id {
			s.budgets = append(s.budgets[:i], s.budgets[i+1:]...)
			return nil
		}
	}
	return nil
}
