// Package types contains common types used across the application
package types

import "github.com/okian/mvp/internal/domain/model"

// Entry represents one row of the MVP ranking as handed to presentation.
type Entry struct {
	Rank            int     `json:"rank" yaml:"rank"`
	ID              string  `json:"id" yaml:"id"`
	Name            string  `json:"name" yaml:"name"`
	Score           int     `json:"score" yaml:"score"`
	PointsPerGame   float64 `json:"points_per_game" yaml:"points_per_game"`
	AssistsPerGame  float64 `json:"assists_per_game" yaml:"assists_per_game"`
	ReboundsPerGame float64 `json:"rebounds_per_game" yaml:"rebounds_per_game"`
	TeamRank        int     `json:"team_rank" yaml:"team_rank"`
	PastMVPCount    int     `json:"past_mvp_count" yaml:"past_mvp_count"`
	Image           string  `json:"image,omitempty" yaml:"image,omitempty"`
}

// NewEntry flattens a scored record at the given 1-based position.
func NewEntry(rank int, r *model.Record) Entry {
	return Entry{
		Rank:            rank,
		ID:              r.ID,
		Name:            r.Name,
		Score:           r.Score,
		PointsPerGame:   r.PointsPerGame,
		AssistsPerGame:  r.AssistsPerGame,
		ReboundsPerGame: r.ReboundsPerGame,
		TeamRank:        r.TeamRank,
		PastMVPCount:    r.PastMVPCount,
		Image:           r.Image,
	}
}
