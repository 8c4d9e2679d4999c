package api

import (
	"context"
	"net/http"

	"github.com/okian/mvp/internal/adapters/render"
)

// MVPDependencies defines the interface for the top query.
type MVPDependencies interface {
	MVP(ctx context.Context) (Entry, error)
}

// MVPHandler handles GET /mvp.
type MVPHandler struct {
	deps MVPDependencies
}

// NewMVPHandler creates a new MVP handler.
func NewMVPHandler(deps MVPDependencies) *MVPHandler {
	return &MVPHandler{deps: deps}
}

type mvpResponse struct {
	Entry
	Line string `json:"line"`
}

// HandleGetMVP returns the top-ranked player.
func (h *MVPHandler) HandleGetMVP(w http.ResponseWriter, r *http.Request) {
	e, err := h.deps.MVP(r.Context())
	if err != nil {
		writeQueryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mvpResponse{Entry: e, Line: render.MVPLine(e)})
}
