// Package charts renders the derived datasets to PNG images with go-chart.
package charts

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"

	"budgetbook/internal/core"
)

const (
	chartWidth  = 800
	chartHeight = 400
)

// CategoryBreakdown renders the current period's expenses by category as a
// pie chart. Returns nil without error when there is nothing to draw.
func CategoryBreakdown(byCategory []core.CategoryAmount) ([]byte, error) {
	values := make([]chart.Value, 0, len(byCategory))
	for _, ca := range byCategory {
		if ca.Amount.Cents <= 0 {
			continue
		}
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s (%s)", ca.Name, ca.Amount.Format()),
			Value: ca.Amount.Float(),
		})
	}
	if len(values) == 0 {
		return nil, nil
	}

	pie := chart.PieChart{
		Width:  chartHeight,
		Height: chartHeight,
		Values: values,
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render category breakdown: %w", err)
	}
	return buf.Bytes(), nil
}

// IncomeVsExpense renders the period's income and expense totals as bars.
func IncomeVsExpense(d core.Dashboard) ([]byte, error) {
	if d.Income.Cents == 0 && d.Expense.Cents == 0 {
		return nil, nil
	}

	bars := chart.BarChart{
		Title:    fmt.Sprintf("Income vs expense %s", d.Period),
		Width:    chartWidth,
		Height:   chartHeight,
		BarWidth: 80,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		Bars: []chart.Value{
			{Label: "Income", Value: d.Income.Float()},
			{Label: "Expense", Value: d.Expense.Float()},
		},
	}

	var buf bytes.Buffer
	if err := bars.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render income vs expense: %w", err)
	}
	return buf.Bytes(), nil
}

// BalanceTrend renders the month-over-month net balance as a line. Each
// point is that month's net, not a running total.
func BalanceTrend(points []core.TrendPoint) ([]byte, error) {
	if len(points) == 0 {
		return nil, nil
	}

	xValues := make([]time.Time, len(points))
	yValues := make([]float64, len(points))
	for i, p := range points {
		xValues[i] = p.Month.Time()
		yValues[i] = p.Net.Float()
	}

	graph := chart.Chart{
		Width:  chartWidth,
		Height: chartHeight,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01"),
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%.0f", v.(float64))
			},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Net balance",
				XValues: xValues,
				YValues: yValues,
				Style: chart.Style{
					StrokeColor: chart.ColorBlue,
					StrokeWidth: 2,
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render balance trend: %w", err)
	}
	return buf.Bytes(), nil
}

// BudgetVsActual renders limit and spending side by side per category.
func BudgetVsActual(rows []core.BudgetRow) ([]byte, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	bars := make([]chart.Value, 0, len(rows)*2)
	for _, r := range rows {
		bars = append(bars,
			chart.Value{
				Label: fmt.Sprintf("%s limit", r.Category),
				Value: r.Limit.Float(),
				Style: chart.Style{FillColor: chart.ColorBlue, StrokeColor: chart.ColorBlue},
			},
			chart.Value{
				Label: fmt.Sprintf("%s spent", r.Category),
				Value: r.Real.Float(),
				Style: chart.Style{FillColor: chart.ColorRed, StrokeColor: chart.ColorRed},
			},
		)
	}

	graph := chart.BarChart{
		Title:    "Budget vs actual",
		Width:    chartWidth,
		Height:   chartHeight,
		BarWidth: 40,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render budget vs actual: %w", err)
	}
	return buf.Bytes(), nil
}
