package charts

import (
	"bytes"
	"testing"

	"budgetbook/internal/core"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func assertPNG(t *testing.T, img []byte) {
	t.Helper()
	if len(img) == 0 {
		t.Fatal("expected image bytes")
	}
	if !bytes.HasPrefix(img, pngMagic) {
		t.Fatal("output is not a PNG")
	}
}

func TestCategoryBreakdown(t *testing.T) {
	img, err := CategoryBreakdown([]core.CategoryAmount{
		{Name: "Food", Amount: core.Money{Cents: 30000}},
		{Name: "Transport", Amount: core.Money{Cents: 12000}},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	assertPNG(t, img)
}

func TestCategoryBreakdownEmpty(t *testing.T) {
	img, err := CategoryBreakdown(nil)
	if err != nil || img != nil {
		t.Fatalf("empty dataset must yield nil, nil: img=%v err=%v", img, err)
	}
}

func TestIncomeVsExpense(t *testing.T) {
	img, err := IncomeVsExpense(core.Dashboard{
		Period:  "2024-03",
		Income:  core.Money{Cents: 150000},
		Expense: core.Money{Cents: 90000},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	assertPNG(t, img)

	img, err = IncomeVsExpense(core.Dashboard{Period: "2024-03"})
	if err != nil || img != nil {
		t.Fatalf("empty dashboard must yield nil, nil: img=%v err=%v", img, err)
	}
}

func TestBalanceTrend(t *testing.T) {
	img, err := BalanceTrend([]core.TrendPoint{
		{Month: "2024-01", Net: core.Money{Cents: 10000}},
		{Month: "2024-02", Net: core.Money{Cents: -5000}},
		{Month: "2024-03", Net: core.Money{Cents: 3000}},
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	assertPNG(t, img)
}

func TestBudgetVsActual(t *testing.T) {
	rows := []core.BudgetRow{
		{
			Budget: core.NewBudget("2024-03", "Food", core.Money{Cents: 10000}),
			Real:   core.Money{Cents: 8000},
		},
	}
	img, err := BudgetVsActual(rows)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	assertPNG(t, img)
}
