package api

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/okian/mvp/internal/adapters/repository"
	"github.com/okian/mvp/internal/domain/scoring"
)

// PlayerDependencies defines the interface for per-player lookups.
type PlayerDependencies interface {
	Player(ctx context.Context, id string) (Entry, scoring.Breakdown, error)
}

// PlayerHandler serves the detail view of exactly one player.
type PlayerHandler struct {
	deps PlayerDependencies
	id   string
}

// NewPlayerHandler binds a detail handler to the player with the given id.
func NewPlayerHandler(deps PlayerDependencies, id string) *PlayerHandler {
	return &PlayerHandler{deps: deps, id: id}
}

// ID returns the player id this handler is bound to.
func (h *PlayerHandler) ID() string { return h.id }

type playerResponse struct {
	Entry
	Breakdown scoring.Breakdown `json:"breakdown"`
}

// ServeHTTP writes the player's entry and score breakdown.
func (h *PlayerHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	e, b, err := h.deps.Player(r.Context(), h.id)
	if err != nil {
		writeQueryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, playerResponse{Entry: e, Breakdown: b})
}

// PlayerDirectory routes /players/{id} to the handler bound to that id.
type PlayerDirectory struct {
	mu       sync.RWMutex
	handlers map[string]*PlayerHandler
}

// NewPlayerDirectory creates an empty directory.
func NewPlayerDirectory() *PlayerDirectory {
	return &PlayerDirectory{handlers: make(map[string]*PlayerHandler)}
}

// Add registers h under its player id, replacing any previous handler.
func (d *PlayerDirectory) Add(h *PlayerHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[h.id] = h
}

// Len returns the number of registered handlers.
func (d *PlayerDirectory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.handlers)
}

// HandleGetPlayer dispatches GET /players/{id}.
func (d *PlayerDirectory) HandleGetPlayer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	d.mu.RLock()
	h, ok := d.handlers[id]
	d.mu.RUnlock()
	if !ok {
		writeError(w, http.StatusNotFound, "not_found", fmt.Errorf("player %q: %w", id, repository.ErrNotFound))
		return
	}
	h.ServeHTTP(w, r)
}
