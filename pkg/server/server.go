// Package server exposes the analyzer over HTTP. The transport is a thin
// shell around the analyzer's function boundary: one POST endpoint per
// analysis, no state between requests.
package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pkg/errors"

	"github.com/nsxbet/sql-advisor/pkg/analyzer"
	"github.com/nsxbet/sql-advisor/pkg/logger"
)

// AnalyzeRequest is the body of POST /analyze. DatabaseType defaults to
// mysql when absent; unrecognized values are coerced to mysql.
type AnalyzeRequest struct {
	Query        string `json:"query"`
	DatabaseType string `json:"database_type"`
}

// errorResponse is the body of every non-200 response.
type errorResponse struct {
	Error string `json:"error"`
}

// Server handles HTTP analysis requests.
type Server struct {
	router chi.Router
}

// New creates a Server with its routes mounted.
func New() *Server {
	s := &Server{}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(corsMiddleware)

	r.Get("/", s.handleRoot)
	r.Get("/health", s.handleHealth)
	r.Post("/analyze", s.handleAnalyze)

	s.router = r
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe starts serving on addr and blocks.
func (s *Server) ListenAndServe(addr string) error {
	slog.Info("listening", "addr", addr)
	if err := http.ListenAndServe(addr, s.router); err != nil {
		return errors.Wrap(err, "server stopped")
	}
	return nil
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Query cannot be empty"})
		return
	}

	a := analyzer.NewForName(req.DatabaseType)
	report, err := a.Analyze(r.Context(), req.Query)
	if err != nil {
		slog.Error("analysis failed", logger.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Analysis failed: " + err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func (*Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "SQL Advisor API is running"})
}

func (*Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", logger.Error(err))
	}
}

// corsMiddleware allows browser dashboards on other origins to call the
// API directly.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
