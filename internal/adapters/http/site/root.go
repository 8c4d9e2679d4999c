// Package site serves a browser view of the ranking at /.
package site

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/okian/mvp/internal/adapters/render"
	"github.com/okian/mvp/internal/domain/types"
)

// Error constants
var (
	ErrRender = errors.New("leaderboard page render failed")
)

//go:embed templates/*
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// Source supplies the ranking shown on the page.
type Source interface {
	Leaderboard(ctx context.Context, limit int) ([]types.Entry, error)
}

// Register attaches the leaderboard page to r.
func Register(_ context.Context, r chi.Router, src Source) {
	if r == nil {
		panic("router is nil")
	}
	r.Get("/", NewRootHandler(src).HandleRoot)
}

// RootHandler handles root path requests
type RootHandler struct {
	src  Source
	tmpl *template.Template
}

// NewRootHandler creates a new root handler
func NewRootHandler(src Source) *RootHandler {
	return &RootHandler{src: src, tmpl: pageTemplate}
}

type page struct {
	MVP     string
	Entries []types.Entry
	Error   string
}

// HandleRoot renders the ranked roster as an HTML list.
func (h *RootHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	var p page
	status := http.StatusOK
	entries, err := h.src.Leaderboard(r.Context(), 0)
	if err != nil {
		p.Error = err.Error()
		status = http.StatusServiceUnavailable
	} else {
		p.Entries = entries
		if len(entries) > 0 {
			p.MVP = render.MVPLine(entries[0])
		}
	}

	// Render fully before committing the status line.
	var buf bytes.Buffer
	if err := h.tmpl.Execute(&buf, p); err != nil {
		http.Error(w, fmt.Errorf("%w: %w", ErrRender, err).Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
