// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/okian/mvp/internal/adapters/repository"
	"github.com/okian/mvp/internal/domain/model"
	"github.com/okian/mvp/internal/domain/ranking"
	"github.com/okian/mvp/internal/domain/scoring"
	"github.com/okian/mvp/internal/domain/types"
	"github.com/okian/mvp/pkg/logger"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the pipeline implementation.
type Dependencies interface {
	Leaderboard(ctx context.Context, limit int) ([]Entry, error)
	MVP(ctx context.Context) (Entry, error)
	Player(ctx context.Context, id string) (Entry, scoring.Breakdown, error)

	// Records lists the roster the per-player routes are built from.
	Records(ctx context.Context) []*model.Record
}

// Entry mirrors the read shape returned by ranking queries.
type Entry = types.Entry

// Server wires HTTP routes for the ranking API.
type Server struct {
	deps               Dependencies
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	leaderboardHandler *LeaderboardHandler
	mvpHandler         *MVPHandler
	players            *PlayerDirectory
	allowedOrigins     []string
	maxLimit           int
	logger             logger.Logger
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...Option) *Server {
	s := &Server{
		deps:           deps,
		allowedOrigins: []string{"*"},
		maxLimit:       defaultMaxLimit,
		logger:         logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.healthHandler = NewHealthHandler()
	s.statsHandler = NewStatsHandler(statsProvider)
	s.leaderboardHandler = NewLeaderboardHandler(deps, s.maxLimit)
	s.mvpHandler = NewMVPHandler(deps)
	s.players = NewPlayerDirectory()
	return s
}

// Register attaches all HTTP routes to r. One detail handler is created per
// record currently held by deps.
func (s *Server) Register(ctx context.Context, r chi.Router) {
	if r == nil {
		panic("router is nil")
	}
	for _, rec := range s.deps.Records(ctx) {
		s.players.Add(NewPlayerHandler(s.deps, rec.ID))
	}
	s.logger.Info(ctx, "player routes registered", logger.Int("players", s.players.Len()))

	r.Get("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	r.Get("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	r.Get("/leaderboard", MetricsMiddleware(s.leaderboardHandler.HandleGetLeaderboard, "leaderboard"))
	r.Get("/mvp", MetricsMiddleware(s.mvpHandler.HandleGetMVP, "mvp"))
	r.Get("/players/{id}", MetricsMiddleware(s.players.HandleGetPlayer, "players"))
}

// Router builds a chi router with the standard middleware stack and every
// API route registered.
func (s *Server) Router(ctx context.Context) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"Content-Length"},
		MaxAge:         300,
	}))
	s.Register(ctx, r)
	return r
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeQueryError maps pipeline errors to HTTP responses.
func writeQueryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, ranking.ErrEmptyInput):
		writeError(w, http.StatusNotFound, "empty_roster", err)
	case errors.Is(err, ranking.ErrNotEvaluated):
		writeError(w, http.StatusServiceUnavailable, "not_evaluated", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
