package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"budgetbook/internal/core"
)

func (s *Server) handleBudgetReport(w http.ResponseWriter, r *http.Request) {
	rows, err := s.tracker.BudgetReport(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to build budget report", "error", err)
		respondError(w, http.StatusInternalServerError, "budget report failed")
		return
	}

	out := make([]budgetRowJSON, len(rows))
	for i, row := range rows {
		out[i] = toBudgetRowJSON(row)
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleSaveBudget(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Category string `json:"category"`
		Limit    string `json:"limit"`
	}
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	limit, err := core.ParseMoney(in.Limit)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid limit")
		return
	}

	b, err := s.tracker.SaveBudget(r.Context(), in.Category, limit)
	if errors.Is(err, core.ErrEmptyName) {
		respondError(w, http.StatusBadRequest, "category name must not be empty")
		return
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to save budget", "error", err)
		respondError(w, http.StatusInternalServerError, "save budget failed")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"id":       b.ID,
		"month":    string(b.Month),
		"category": b.Category,
		"limit":    b.Limit.Format(),
	})
}

func (s *Server) handleDeleteBudget(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimSpace(r.PathValue("id"))
	if id == "" {
		respondError(w, http.StatusBadRequest, "missing budget id")
		return
	}

	if err := s.tracker.DeleteBudget(r.Context(), id); err != nil {
		if errors.Is(err, core.ErrDeclined) {
			respondError(w, http.StatusConflict, "delete not confirmed")
			return
		}
		slog.ErrorContext(r.Context(), "Failed to delete budget", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "delete budget failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
