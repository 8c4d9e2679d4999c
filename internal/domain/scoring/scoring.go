// Package scoring turns a player's statistics into an MVP score and applies
// that rule to every record of a roster exactly once.
package scoring

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/okian/mvp/internal/domain/model"
	"github.com/okian/mvp/pkg/logger"
	"github.com/okian/mvp/pkg/metrics"
)

// Breakdown lists every term that makes up a score.
type Breakdown struct {
	Points   int `json:"points" yaml:"points"`
	Assists  int `json:"assists" yaml:"assists"`
	Rebounds int `json:"rebounds" yaml:"rebounds"`
	TeamRank int `json:"team_rank" yaml:"team_rank"`
	PastMVP  int `json:"past_mvp" yaml:"past_mvp"`
	Total    int `json:"total" yaml:"total"`
}

// Explain computes the score of s term by term.
func Explain(s model.Stats) Breakdown {
	b := Breakdown{
		Points:   pointsTable.Award(s.PointsPerGame),
		Assists:  assistsTable.Award(s.AssistsPerGame),
		Rebounds: reboundsTable.Award(s.ReboundsPerGame),
		TeamRank: teamRankBase - s.TeamRank,
		PastMVP:  s.PastMVPCount,
	}
	b.Total = b.Points + b.Assists + b.Rebounds + b.TeamRank + b.PastMVP
	return b
}

// Evaluate returns the MVP score for s. It is pure and defined for every input.
func Evaluate(s model.Stats) int {
	return Explain(s).Total
}

// Evaluator resolves records in place. It carries no state between runs
// beyond its output sinks.
type Evaluator struct {
	logger      logger.Logger
	diagnostics io.Writer
}

// NewEvaluator creates an evaluator with configuration options.
func NewEvaluator(opts ...Option) *Evaluator {
	e := &Evaluator{
		logger:      logger.Nop(),
		diagnostics: io.Discard,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EvaluateRecord scores r and writes the result back into it.
func (e *Evaluator) EvaluateRecord(ctx context.Context, r *model.Record) error {
	start := time.Now()
	score := Evaluate(r.Stats)
	if err := r.Resolve(score); err != nil {
		return err
	}
	metrics.RecordEvaluationLatency(float64(time.Since(start).Microseconds()) / 1000)
	metrics.RecordRecordEvaluated()
	metrics.UpdatePlayerScore(r.Name, score)

	if _, err := fmt.Fprintf(e.diagnostics, "Player: %s Points: %d\n", r.Name, score); err != nil {
		e.logger.Warn(ctx, "failed to write diagnostic line", logger.String("name", r.Name), logger.Error(err))
	}
	e.logger.Debug(ctx, "record evaluated",
		logger.String("id", r.ID),
		logger.String("name", r.Name),
		logger.Int("score", score),
	)
	return nil
}

// EvaluateAll makes one pass over records in order, scoring each record that
// is still unevaluated. Already evaluated records are left alone, so a second
// pass is a no-op. It returns how many records were scored.
func (e *Evaluator) EvaluateAll(ctx context.Context, records []*model.Record) (int, error) {
	scored := 0
	for _, r := range records {
		if err := ctx.Err(); err != nil {
			return scored, fmt.Errorf("evaluation cancelled: %w", err)
		}
		if r.Evaluated() {
			continue
		}
		if err := e.EvaluateRecord(ctx, r); err != nil {
			return scored, err
		}
		scored++
	}
	e.logger.Info(ctx, "evaluation pass finished",
		logger.Int("records", len(records)),
		logger.Int("scored", scored),
	)
	return scored, nil
}
