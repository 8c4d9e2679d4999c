// Package render prints rankings for terminals and pipelines.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/okian/mvp/internal/domain/scoring"
	"github.com/okian/mvp/internal/domain/types"
	"gopkg.in/yaml.v3"
)

// Supported formats.
const (
	Text = "text"
	JSON = "json"
	YAML = "yaml"
)

// MVPLine is the single-line answer to "who is the MVP".
func MVPLine(e types.Entry) string {
	return fmt.Sprintf("The MVP is: %s with %d points", e.Name, e.Score)
}

// Renderer writes entries in one output format.
type Renderer struct {
	format string
}

// New returns a renderer for format.
func New(format string) (*Renderer, error) {
	switch format {
	case Text, JSON, YAML:
		return &Renderer{format: format}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Format reports the renderer's output format.
func (r *Renderer) Format() string { return r.format }

// Leaderboard writes the full ranking.
func (r *Renderer) Leaderboard(w io.Writer, entries []types.Entry) error {
	if r.format != Text {
		return r.encode(w, entries)
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%d. %s\n   Points: %d\n", e.Rank, e.Name, e.Score); err != nil {
			return fmt.Errorf("write leaderboard: %w", err)
		}
	}
	return nil
}

// MVP writes the top entry.
func (r *Renderer) MVP(w io.Writer, e types.Entry) error {
	if r.format != Text {
		return r.encode(w, mvpView{Entry: e, Line: MVPLine(e)})
	}
	if _, err := fmt.Fprintln(w, MVPLine(e)); err != nil {
		return fmt.Errorf("write mvp: %w", err)
	}
	return nil
}

// Detail writes the per-player stats view with its score breakdown.
func (r *Renderer) Detail(w io.Writer, e types.Entry, b scoring.Breakdown) error {
	if r.format != Text {
		return r.encode(w, detailView{Entry: e, Breakdown: b})
	}
	_, err := fmt.Fprintf(w,
		"Name: %s\nPPG: %s\nAPG: %s\nRPG: %s\nTeam Rank: %d\nPast MVPs: %d\nPoints: %d\n"+
			"  ppg +%d, apg +%d, rpg +%d, team %+d, past mvp %+d\n",
		e.Name, stat(e.PointsPerGame), stat(e.AssistsPerGame), stat(e.ReboundsPerGame), e.TeamRank, e.PastMVPCount, e.Score,
		b.Points, b.Assists, b.Rebounds, b.TeamRank, b.PastMVP,
	)
	if err != nil {
		return fmt.Errorf("write detail: %w", err)
	}
	return nil
}

// stat prints a statistic exactly as given, without rounding.
func stat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type mvpView struct {
	types.Entry `yaml:",inline"`
	Line        string `json:"line" yaml:"line"`
}

type detailView struct {
	types.Entry `yaml:",inline"`
	Breakdown   scoring.Breakdown `json:"breakdown" yaml:"breakdown"`
}

func (r *Renderer) encode(w io.Writer, v any) error {
	switch r.format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
	}
	return nil
}
