// Package http exposes the tracker as a JSON API. Presentation concerns
// (HTML, dialogs, chart placement) stay with the clients; this layer only
// parses input, calls the tracker and encodes the derived views.
package http

import (
	"encoding/json"
	"net/http"

	"budgetbook/internal/middleware/trace"
	"budgetbook/internal/services"
)

type Server struct {
	http.Server
	tracker *services.Tracker
}

// NewServer configures routes and middleware, returning a ready-to-run
// server.
func NewServer(addr string, tracker *services.Tracker) *Server {
	s := &Server{tracker: tracker}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("GET /readyz", handleReady)

	mux.HandleFunc("GET /api/categories", s.handleListCategories)
	mux.HandleFunc("POST /api/categories", s.handleAddCategory)
	mux.HandleFunc("PUT /api/categories/{id}", s.handleRenameCategory)
	mux.HandleFunc("DELETE /api/categories/{id}", s.handleDeleteCategory)

	mux.HandleFunc("GET /api/transactions", s.handleListTransactions)
	mux.HandleFunc("POST /api/transactions", s.handleAddTransaction)
	mux.HandleFunc("PUT /api/transactions/{id}", s.handleUpdateTransaction)
	mux.HandleFunc("DELETE /api/transactions/{id}", s.handleDeleteTransaction)

	mux.HandleFunc("GET /api/budgets", s.handleBudgetReport)
	mux.HandleFunc("PUT /api/budgets", s.handleSaveBudget)
	mux.HandleFunc("DELETE /api/budgets/{id}", s.handleDeleteBudget)

	mux.HandleFunc("GET /api/dashboard", s.handleDashboard)
	mux.HandleFunc("GET /api/trend", s.handleTrend)
	mux.HandleFunc("GET /api/period", s.handleGetPeriod)
	mux.HandleFunc("PUT /api/period", s.handleSetPeriod)
	mux.HandleFunc("GET /api/charts/{name}", s.handleChart)

	s.Addr = addr
	s.Handler = trace.Middleware(mux)
	return s
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
