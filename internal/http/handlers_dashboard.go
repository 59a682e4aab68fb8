package http

import (
	"log/slog"
	"net/http"

	"budgetbook/internal/charts"
	"budgetbook/internal/core"
)

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	d, err := s.tracker.Dashboard(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to build dashboard", "error", err)
		respondError(w, http.StatusInternalServerError, "dashboard failed")
		return
	}
	respondJSON(w, http.StatusOK, toDashboardJSON(d))
}

func (s *Server) handleTrend(w http.ResponseWriter, r *http.Request) {
	points, err := s.tracker.BalanceTrend(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to build balance trend", "error", err)
		respondError(w, http.StatusInternalServerError, "trend failed")
		return
	}

	out := make([]trendPointJSON, len(points))
	for i, p := range points {
		out[i] = trendPointJSON{Month: string(p.Month), Net: p.Net.Format()}
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetPeriod(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"period": string(s.tracker.Period())})
}

func (s *Server) handleSetPeriod(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Period string `json:"period"`
	}
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.tracker.SetPeriod(core.Period(in.Period)); err != nil {
		respondError(w, http.StatusBadRequest, "invalid period, want YYYY-MM")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"period": in.Period})
}

// handleChart renders one of the four chart images. A dataset with nothing
// to draw yields 204, not an error.
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	var (
		img []byte
		err error
	)

	switch r.PathValue("name") {
	case "categories":
		var d core.Dashboard
		if d, err = s.tracker.Dashboard(r.Context()); err == nil {
			img, err = charts.CategoryBreakdown(d.ExpensesByCategory)
		}
	case "income-expense":
		var d core.Dashboard
		if d, err = s.tracker.Dashboard(r.Context()); err == nil {
			img, err = charts.IncomeVsExpense(d)
		}
	case "trend":
		var points []core.TrendPoint
		if points, err = s.tracker.BalanceTrend(r.Context()); err == nil {
			img, err = charts.BalanceTrend(points)
		}
	case "budgets":
		var rows []core.BudgetRow
		if rows, err = s.tracker.BudgetReport(r.Context()); err == nil {
			img, err = charts.BudgetVsActual(rows)
		}
	default:
		respondError(w, http.StatusNotFound, "unknown chart")
		return
	}

	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to render chart", "name", r.PathValue("name"), "error", err)
		respondError(w, http.StatusInternalServerError, "chart rendering failed")
		return
	}
	if img == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(img)
}
