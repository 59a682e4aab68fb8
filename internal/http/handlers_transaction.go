package http

import (
	"errors"
	"log/slog"
	"net/http"

	"budgetbook/internal/core"
)

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("q")
	txs, err := s.tracker.Transactions(r.Context(), search)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to list transactions", "error", err)
		respondError(w, http.StatusInternalServerError, "list transactions failed")
		return
	}

	out := make([]transactionJSON, len(txs))
	for i, t := range txs {
		out[i] = toTransactionJSON(t)
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleAddTransaction(w http.ResponseWriter, r *http.Request) {
	var in transactionJSON
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	tx, err := parseTransaction(in)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, err := s.tracker.AddTransaction(r.Context(), tx)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to add transaction", "error", err)
		respondError(w, http.StatusInternalServerError, "add transaction failed")
		return
	}
	respondJSON(w, http.StatusCreated, toTransactionJSON(created))
}

func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	var in transactionJSON
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	tx, err := parseTransaction(in)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.tracker.UpdateTransaction(r.Context(), id, tx); err != nil {
		slog.ErrorContext(r.Context(), "Failed to update transaction", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "update transaction failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.tracker.DeleteTransaction(r.Context(), id); err != nil {
		if errors.Is(err, core.ErrDeclined) {
			respondError(w, http.StatusConflict, "delete not confirmed")
			return
		}
		slog.ErrorContext(r.Context(), "Failed to delete transaction", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "delete transaction failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
