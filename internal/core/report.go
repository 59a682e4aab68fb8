package core

import (
	"sort"
	"strings"
)

const (
	StatusNormal     BudgetStatus = "normal"
	StatusWarning    BudgetStatus = "warning"
	StatusOverBudget BudgetStatus = "over-budget"
)

type (
	// BudgetStatus classifies how much of a budget has been spent.
	BudgetStatus string

	// CategoryAmount is an amount aggregated by category name.
	CategoryAmount struct {
		Name   string
		Amount Money
	}

	// BudgetRow is a budget joined with the actual spending of its month.
	BudgetRow struct {
		Budget
		Real        Money
		Deviation   Money
		PercentUsed float64
		Status      BudgetStatus
	}

	// Dashboard is the KPI summary for one period.
	Dashboard struct {
		Period             Period
		Income             Money
		Expense            Money
		Balance            Money
		ExpensesByCategory []CategoryAmount
		TotalBudgetLimit   Money
		BudgetUsedPercent  float64
	}

	// TrendPoint is one month's net balance, not cumulative.
	TrendPoint struct {
		Month Period
		Net   Money
	}
)

// ClassifyBudget maps a usage percentage to a status. Exactly 80 is still
// normal, exactly 100 is still warning.
func ClassifyBudget(percentUsed float64) BudgetStatus {
	switch {
	case percentUsed > 100:
		return StatusOverBudget
	case percentUsed > 80:
		return StatusWarning
	default:
		return StatusNormal
	}
}

// UsedPercent computes real/limit*100 with a zero-limit guard: a zero limit
// yields 0, never a division error.
func UsedPercent(real, limit Money) float64 {
	if limit.Cents <= 0 {
		return 0
	}
	return float64(real.Cents) / float64(limit.Cents) * 100
}

// BuildBudgetRows joins the budgets of one period with the expense totals of
// that same period. Budgets of other months are ignored.
func BuildBudgetRows(period Period, budgets []Budget, transactions []Transaction) []BudgetRow {
	rows := make([]BudgetRow, 0)
	for _, b := range budgets {
		if b.Month != period {
			continue
		}
		var real int64
		for _, t := range transactions {
			if t.Type == Expense && period.Contains(t.Date) && t.Category == b.Category {
				real += t.Amount.Cents
			}
		}
		pct := UsedPercent(Money{Cents: real}, b.Limit)
		rows = append(rows, BudgetRow{
			Budget:      b,
			Real:        Money{Cents: real},
			Deviation:   Money{Cents: b.Limit.Cents - real},
			PercentUsed: pct,
			Status:      ClassifyBudget(pct),
		})
	}
	return rows
}

// BuildDashboard computes the period KPIs and the expense breakdown by
// category. The overall budget utilization divides the period's expenses by
// the sum of every budget limit of the period, 0 when no limits exist.
func BuildDashboard(period Period, transactions []Transaction, budgets []Budget) Dashboard {
	d := Dashboard{Period: period}

	byCategory := make(map[string]int64)
	var order []string
	for _, t := range transactions {
		if !period.Contains(t.Date) {
			continue
		}
		switch t.Type {
		case Income:
			d.Income.Cents += t.Amount.Cents
		case Expense:
			d.Expense.Cents += t.Amount.Cents
			if _, seen := byCategory[t.Category]; !seen {
				order = append(order, t.Category)
			}
			byCategory[t.Category] += t.Amount.Cents
		}
	}
	d.Balance = Money{Cents: d.Income.Cents - d.Expense.Cents}

	d.ExpensesByCategory = make([]CategoryAmount, 0, len(order))
	for _, name := range order {
		d.ExpensesByCategory = append(d.ExpensesByCategory, CategoryAmount{
			Name:   name,
			Amount: Money{Cents: byCategory[name]},
		})
	}

	for _, b := range budgets {
		if b.Month == period {
			d.TotalBudgetLimit.Cents += b.Limit.Cents
		}
	}
	d.BudgetUsedPercent = UsedPercent(d.Expense, d.TotalBudgetLimit)

	return d
}

// BuildTrend groups ALL transactions by their year-month and returns each
// month's net (income minus expense), sorted ascending. Nets are per month,
// never cumulative.
func BuildTrend(transactions []Transaction) []TrendPoint {
	nets := make(map[Period]int64)
	for _, t := range transactions {
		m := t.Date.Month()
		switch t.Type {
		case Income:
			nets[m] += t.Amount.Cents
		case Expense:
			nets[m] -= t.Amount.Cents
		}
	}

	months := make([]Period, 0, len(nets))
	for m := range nets {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i] < months[j] })

	points := make([]TrendPoint, len(months))
	for i, m := range months {
		points[i] = TrendPoint{Month: m, Net: Money{Cents: nets[m]}}
	}
	return points
}

// MatchesSearch reports whether a transaction survives the search filter:
// case-insensitive containment on description or category. An empty search
// matches everything.
func MatchesSearch(t Transaction, search string) bool {
	search = strings.ToLower(strings.TrimSpace(search))
	if search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Description), search) ||
		strings.Contains(strings.ToLower(t.Category), search)
}

// FilterTransactions keeps search matches sorted by date descending. The
// sort is stable, so same-day records keep their store order.
func FilterTransactions(transactions []Transaction, search string) []Transaction {
	out := make([]Transaction, 0, len(transactions))
	for _, t := range transactions {
		if MatchesSearch(t, search) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}
