// Package model contains domain models passed between layers.
package model

import (
	"fmt"
	"math"
	"strings"
)

// State tags whether a record has been scored.
type State int

const (
	// Unevaluated is the state of every record until the evaluator resolves it.
	Unevaluated State = iota
	// Evaluated marks a record whose Score is final.
	Evaluated
)

func (s State) String() string {
	switch s {
	case Unevaluated:
		return "unevaluated"
	case Evaluated:
		return "evaluated"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Stats holds the per-player inputs of the MVP rule.
type Stats struct {
	PointsPerGame   float64 // points per game
	AssistsPerGame  float64 // assists per game
	ReboundsPerGame float64 // rebounds per game
	TeamRank        int     // conference standing, 1 = best
	PastMVPCount    int     // MVP awards already won
}

// Record is one player's statistics plus the computed MVP score.
// Score is only meaningful once State is Evaluated; 0 is a valid score.
type Record struct {
	ID    string // assigned by the store
	Name  string // player name, unique within a run by convention
	Image string // optional picture reference for presentation
	Stats

	Score int
	State State
}

// New builds an unevaluated record.
func New(name string, stats Stats) *Record {
	return &Record{Name: name, Stats: stats}
}

// Evaluated reports whether the record already carries its final score.
func (r *Record) Evaluated() bool {
	return r.State == Evaluated
}

// Resolve stores the computed score. A record can only be resolved once.
func (r *Record) Resolve(score int) error {
	if r.State == Evaluated {
		return fmt.Errorf("resolve %q: %w", r.Name, ErrAlreadyEvaluated)
	}
	r.Score = score
	r.State = Evaluated
	return nil
}

// Validate rejects malformed records. Ranges are deliberately not checked.
func (r *Record) Validate() error {
	if r == nil {
		return &ValidationError{Field: "record", Reason: "must not be nil"}
	}
	if strings.TrimSpace(r.Name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	for _, f := range []struct {
		field string
		value float64
	}{
		{"points_per_game", r.PointsPerGame},
		{"assists_per_game", r.AssistsPerGame},
		{"rebounds_per_game", r.ReboundsPerGame},
	} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &ValidationError{Record: r.Name, Field: f.field, Reason: "must be a finite number"}
		}
	}
	return nil
}
