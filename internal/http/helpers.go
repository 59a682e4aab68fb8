package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"budgetbook/internal/core"
)

// Wire representations. Amounts travel as decimal strings in both
// directions; cents stay an implementation detail.
type (
	categoryJSON struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}

	transactionJSON struct {
		ID          int64  `json:"id"`
		Type        string `json:"type"`
		Amount      string `json:"amount"`
		Date        string `json:"date"`
		Category    string `json:"category"`
		Description string `json:"description,omitempty"`
	}

	budgetRowJSON struct {
		ID          string  `json:"id"`
		Month       string  `json:"month"`
		Category    string  `json:"category"`
		Limit       string  `json:"limit"`
		Real        string  `json:"real"`
		Deviation   string  `json:"deviation"`
		PercentUsed float64 `json:"percent_used"`
		Status      string  `json:"status"`
	}

	categoryAmountJSON struct {
		Name   string `json:"name"`
		Amount string `json:"amount"`
	}

	dashboardJSON struct {
		Period             string               `json:"period"`
		Income             string               `json:"income"`
		Expense            string               `json:"expense"`
		Balance            string               `json:"balance"`
		ExpensesByCategory []categoryAmountJSON `json:"expenses_by_category"`
		TotalBudgetLimit   string               `json:"total_budget_limit"`
		BudgetUsedPercent  float64              `json:"budget_used_percent"`
	}

	trendPointJSON struct {
		Month string `json:"month"`
		Net   string `json:"net"`
	}
)

func toCategoryJSON(c core.Category) categoryJSON {
	return categoryJSON{ID: c.ID, Name: c.Name}
}

func toTransactionJSON(t core.Transaction) transactionJSON {
	return transactionJSON{
		ID:          t.ID,
		Type:        string(t.Type),
		Amount:      t.Amount.Format(),
		Date:        string(t.Date),
		Category:    t.Category,
		Description: t.Description,
	}
}

func toBudgetRowJSON(r core.BudgetRow) budgetRowJSON {
	return budgetRowJSON{
		ID:          r.ID,
		Month:       string(r.Month),
		Category:    r.Category,
		Limit:       r.Limit.Format(),
		Real:        r.Real.Format(),
		Deviation:   r.Deviation.Format(),
		PercentUsed: r.PercentUsed,
		Status:      string(r.Status),
	}
}

func toDashboardJSON(d core.Dashboard) dashboardJSON {
	byCategory := make([]categoryAmountJSON, len(d.ExpensesByCategory))
	for i, ca := range d.ExpensesByCategory {
		byCategory[i] = categoryAmountJSON{Name: ca.Name, Amount: ca.Amount.Format()}
	}
	return dashboardJSON{
		Period:             string(d.Period),
		Income:             d.Income.Format(),
		Expense:            d.Expense.Format(),
		Balance:            d.Balance.Format(),
		ExpensesByCategory: byCategory,
		TotalBudgetLimit:   d.TotalBudgetLimit.Format(),
		BudgetUsedPercent:  d.BudgetUsedPercent,
	}
}

// decodeJSON reads a small JSON body into dst.
func decodeJSON(r *http.Request, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<16))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	return nil
}

// pathID parses the {id} path segment as an integer key.
func pathID(r *http.Request) (int64, error) {
	raw := strings.TrimSpace(r.PathValue("id"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return id, nil
}

// parseTransaction builds a domain transaction from its wire form.
func parseTransaction(in transactionJSON) (core.Transaction, error) {
	amount, err := core.ParseMoney(in.Amount)
	if err != nil {
		return core.Transaction{}, err
	}
	t := core.Transaction{
		Type:        core.TxType(in.Type),
		Amount:      amount,
		Date:        core.Date(in.Date),
		Category:    strings.TrimSpace(in.Category),
		Description: strings.TrimSpace(in.Description),
	}
	if err := t.Validate(); err != nil {
		return core.Transaction{}, err
	}
	return t, nil
}
