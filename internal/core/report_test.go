package core

import "testing"

func expenseOn(date Date, category string, cents int64) Transaction {
	return Transaction{Type: Expense, Amount: Money{Cents: cents}, Date: date, Category: category}
}

func incomeOn(date Date, category string, cents int64) Transaction {
	return Transaction{Type: Income, Amount: Money{Cents: cents}, Date: date, Category: category}
}

func TestClassifyBudget(t *testing.T) {
	cases := []struct {
		pct  float64
		want BudgetStatus
	}{
		{0, StatusNormal},
		{79.9, StatusNormal},
		{80, StatusNormal}, // boundary stays normal
		{80.1, StatusWarning},
		{100, StatusWarning}, // boundary stays warning
		{100.1, StatusOverBudget},
		{250, StatusOverBudget},
	}
	for _, tc := range cases {
		if got := ClassifyBudget(tc.pct); got != tc.want {
			t.Fatalf("%.1f%% expected %q, got %q", tc.pct, tc.want, got)
		}
	}
}

func TestUsedPercentZeroLimit(t *testing.T) {
	if got := UsedPercent(Money{Cents: 5000}, Money{}); got != 0 {
		t.Fatalf("zero limit must yield 0%%, got %v", got)
	}
	if got := UsedPercent(Money{}, Money{Cents: 10000}); got != 0 {
		t.Fatalf("zero spending must yield 0%%, got %v", got)
	}
}

func TestBuildBudgetRows(t *testing.T) {
	budget := NewBudget("2024-03", "Food", Money{Cents: 10000})
	txs := []Transaction{
		expenseOn("2024-03-01", "Food", 5000),
		expenseOn("2024-03-15", "Food", 3000),
		expenseOn("2024-04-02", "Food", 9999),      // other month
		expenseOn("2024-03-20", "Transport", 1000), // other category
		incomeOn("2024-03-10", "Food", 2000),       // income never counts
	}

	rows := BuildBudgetRows("2024-03", []Budget{budget}, txs)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	if row.Real.Cents != 8000 {
		t.Fatalf("expected real 8000, got %d", row.Real.Cents)
	}
	if row.Deviation.Cents != 2000 {
		t.Fatalf("expected deviation 2000, got %d", row.Deviation.Cents)
	}
	if row.PercentUsed != 80.0 {
		t.Fatalf("expected 80%%, got %v", row.PercentUsed)
	}
	if row.Status != StatusNormal {
		t.Fatalf("exactly 80%% must stay normal, got %q", row.Status)
	}
}

func TestBuildBudgetRowsOverBudget(t *testing.T) {
	budget := NewBudget("2024-03", "Food", Money{Cents: 10000})
	txs := []Transaction{
		expenseOn("2024-03-01", "Food", 5000),
		expenseOn("2024-03-15", "Food", 3000),
		expenseOn("2024-03-21", "Food", 2500),
	}

	rows := BuildBudgetRows("2024-03", []Budget{budget}, txs)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].PercentUsed != 105.0 {
		t.Fatalf("expected 105%%, got %v", rows[0].PercentUsed)
	}
	if rows[0].Status != StatusOverBudget {
		t.Fatalf("expected over-budget, got %q", rows[0].Status)
	}
}

func TestBuildBudgetRowsZeroLimit(t *testing.T) {
	budget := NewBudget("2024-03", "Food", Money{})
	txs := []Transaction{expenseOn("2024-03-01", "Food", 5000)}

	rows := BuildBudgetRows("2024-03", []Budget{budget}, txs)
	if rows[0].PercentUsed != 0 {
		t.Fatalf("zero limit must yield 0%%, got %v", rows[0].PercentUsed)
	}
	if rows[0].Status != StatusNormal {
		t.Fatalf("expected normal, got %q", rows[0].Status)
	}
}

func TestBuildDashboard(t *testing.T) {
	txs := []Transaction{
		incomeOn("2024-03-01", "Other", 150000),
		expenseOn("2024-03-02", "Food", 20000),
		expenseOn("2024-03-05", "Food", 10000),
		expenseOn("2024-03-09", "Transport", 5000),
		expenseOn("2024-02-20", "Food", 77700), // outside the period
	}
	budgets := []Budget{
		NewBudget("2024-03", "Food", Money{Cents: 40000}),
		NewBudget("2024-03", "Transport", Money{Cents: 30000}),
		NewBudget("2024-02", "Food", Money{Cents: 99999}),
	}

	d := BuildDashboard("2024-03", txs, budgets)
	if d.Income.Cents != 150000 {
		t.Fatalf("income: got %d", d.Income.Cents)
	}
	if d.Expense.Cents != 35000 {
		t.Fatalf("expense: got %d", d.Expense.Cents)
	}
	if d.Balance.Cents != 115000 {
		t.Fatalf("balance: got %d", d.Balance.Cents)
	}
	if len(d.ExpensesByCategory) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(d.ExpensesByCategory))
	}
	if d.ExpensesByCategory[0].Name != "Food" || d.ExpensesByCategory[0].Amount.Cents != 30000 {
		t.Fatalf("food breakdown wrong: %+v", d.ExpensesByCategory[0])
	}
	if d.TotalBudgetLimit.Cents != 70000 {
		t.Fatalf("total limit: got %d", d.TotalBudgetLimit.Cents)
	}
	if d.BudgetUsedPercent != 50.0 {
		t.Fatalf("budget used: got %v", d.BudgetUsedPercent)
	}
}

func TestBuildDashboardNoBudgets(t *testing.T) {
	d := BuildDashboard("2024-03", []Transaction{expenseOn("2024-03-02", "Food", 100)}, nil)
	if d.BudgetUsedPercent != 0 {
		t.Fatalf("no budgets must yield 0%%, got %v", d.BudgetUsedPercent)
	}
}

func TestBuildTrend(t *testing.T) {
	txs := []Transaction{
		incomeOn("2024-01-10", "Other", 20000),
		expenseOn("2024-01-20", "Food", 10000),
		expenseOn("2024-02-05", "Food", 5000),
		incomeOn("2024-03-01", "Other", 8000),
		expenseOn("2024-03-08", "Food", 5000),
	}

	points := BuildTrend(txs)
	want := []TrendPoint{
		{Month: "2024-01", Net: Money{Cents: 10000}},
		{Month: "2024-02", Net: Money{Cents: -5000}},
		{Month: "2024-03", Net: Money{Cents: 3000}},
	}
	if len(points) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(points))
	}
	for i := range want {
		if points[i] != want[i] {
			t.Fatalf("point %d: expected %+v, got %+v", i, want[i], points[i])
		}
	}
}

func TestFilterTransactions(t *testing.T) {
	txs := []Transaction{
		{ID: 1, Type: Expense, Date: "2024-03-01", Category: "Food", Description: "groceries"},
		{ID: 2, Type: Expense, Date: "2024-03-05", Category: "Transport", Description: "bus ticket"},
		{ID: 3, Type: Expense, Date: "2024-03-05", Category: "Food", Description: "lunch"},
		{ID: 4, Type: Income, Date: "2024-02-28", Category: "Other", Description: "salary"},
	}

	t.Run("empty search matches all, newest first", func(t *testing.T) {
		got := FilterTransactions(txs, "")
		if len(got) != 4 {
			t.Fatalf("expected 4, got %d", len(got))
		}
		if got[0].ID != 2 || got[1].ID != 3 {
			t.Fatalf("same-day records must keep insertion order: %d, %d", got[0].ID, got[1].ID)
		}
		if got[3].ID != 4 {
			t.Fatalf("oldest must come last, got %d", got[3].ID)
		}
	})

	t.Run("matches description or category, case-insensitive", func(t *testing.T) {
		got := FilterTransactions(txs, "FOOD")
		if len(got) != 2 {
			t.Fatalf("expected 2, got %d", len(got))
		}
		got = FilterTransactions(txs, "bus")
		if len(got) != 1 || got[0].ID != 2 {
			t.Fatalf("expected tx 2, got %+v", got)
		}
	})
}
