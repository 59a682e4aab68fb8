package http

import (
	"errors"
	"log/slog"
	"net/http"

	"budgetbook/internal/core"
)

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := s.tracker.Categories(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to list categories", "error", err)
		respondError(w, http.StatusInternalServerError, "list categories failed")
		return
	}

	out := make([]categoryJSON, len(cats))
	for i, c := range cats {
		out[i] = toCategoryJSON(c)
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleAddCategory(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	c, err := s.tracker.AddCategory(r.Context(), in.Name)
	if errors.Is(err, core.ErrEmptyName) {
		respondError(w, http.StatusBadRequest, "category name must not be empty")
		return
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to add category", "error", err)
		respondError(w, http.StatusInternalServerError, "add category failed")
		return
	}
	respondJSON(w, http.StatusCreated, toCategoryJSON(c))
}

func (s *Server) handleRenameCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	var in struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	err = s.tracker.RenameCategory(r.Context(), id, in.Name)
	if errors.Is(err, core.ErrEmptyName) {
		respondError(w, http.StatusBadRequest, "category name must not be empty")
		return
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to rename category", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "rename category failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	removed, err := s.tracker.DeleteCategory(r.Context(), id)
	if errors.Is(err, core.ErrDeclined) {
		respondError(w, http.StatusConflict, "delete not confirmed")
		return
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to delete category", "id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "delete category failed")
		return
	}
	respondJSON(w, http.StatusOK, map[string]int{"transactions_removed": removed})
}
