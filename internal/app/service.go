// Package service runs the MVP pipeline: load a roster, score it once, and
// answer ranking queries for the CLI and the HTTP API.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/okian/mvp/internal/adapters/repository"
	"github.com/okian/mvp/internal/domain/model"
	"github.com/okian/mvp/internal/domain/ranking"
	"github.com/okian/mvp/internal/domain/scoring"
	"github.com/okian/mvp/internal/domain/types"
	"github.com/okian/mvp/pkg/logger"
	"github.com/okian/mvp/pkg/metrics"
)

// Query kinds reported to metrics.
const (
	queryLeaderboard = "leaderboard"
	queryMVP         = "mvp"
	queryPlayer      = "player"
)

// Service owns one store and one evaluator for the lifetime of a run.
type Service struct {
	mu sync.RWMutex

	store     repository.Store
	evaluator *scoring.Evaluator
	logger    logger.Logger

	runID       string
	runs        int
	loadedAt    time.Time
	evaluatedAt time.Time
}

// New constructs a Service with an empty in-memory store.
func New(opts ...Option) *Service {
	cfg := &settings{
		logger: logger.Nop(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.store == nil {
		cfg.store = repository.NewMemoryStore()
	}
	evalOpts := []scoring.Option{scoring.WithLogger(cfg.logger.Named("scoring"))}
	if cfg.diagnostics != nil {
		evalOpts = append(evalOpts, scoring.WithDiagnostics(cfg.diagnostics))
	}

	return &Service{
		store:     cfg.store,
		evaluator: scoring.NewEvaluator(evalOpts...),
		logger:    cfg.logger,
	}
}

// Load replaces the current roster with records and starts a new run.
// Records are added in order; the first invalid record aborts the load.
func (s *Service) Load(ctx context.Context, records []*model.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.Reset(ctx)
	metrics.ResetPlayerScores()
	s.runID = uuid.NewString()
	s.loadedAt = time.Now()
	s.evaluatedAt = time.Time{}

	for _, r := range records {
		if err := s.store.Add(ctx, r); err != nil {
			return fmt.Errorf("load roster: %w", err)
		}
	}
	s.logger.Info(ctx, "roster loaded",
		logger.String("run_id", s.runID),
		logger.Int("players", len(records)),
	)
	return nil
}

// Evaluate scores every record still unevaluated in the current roster.
func (s *Service) Evaluate(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	scored, err := s.evaluator.EvaluateAll(ctx, s.store.All(ctx))
	if err != nil {
		return scored, err
	}
	s.evaluatedAt = time.Now()
	return scored, nil
}

// Run loads records and evaluates them in one step.
func (s *Service) Run(ctx context.Context, records []*model.Record) error {
	if err := s.Load(ctx, records); err != nil {
		return err
	}
	if _, err := s.Evaluate(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	s.runs++
	s.mu.Unlock()
	metrics.RecordPipelineRun()
	return nil
}

// RunID identifies the current run. It is empty before the first Load.
func (s *Service) RunID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.runID
}

// Records returns the current roster in load order.
func (s *Service) Records(ctx context.Context) []*model.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.All(ctx)
}

// Leaderboard returns the ranked roster. A limit of 0 returns every entry.
func (s *Service) Leaderboard(ctx context.Context, limit int) ([]types.Entry, error) {
	metrics.RecordQuery(queryLeaderboard)
	if limit < 0 {
		metrics.RecordQueryError(queryLeaderboard)
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, limit)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	ranked, err := s.ranked(ctx)
	if err != nil {
		metrics.RecordQueryError(queryLeaderboard)
		return nil, err
	}
	if limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranking.Entries(ranked), nil
}

// MVP returns the top-scoring player.
func (s *Service) MVP(ctx context.Context) (types.Entry, error) {
	metrics.RecordQuery(queryMVP)

	s.mu.RLock()
	defer s.mu.RUnlock()

	records, err := s.scored(ctx)
	if err != nil {
		metrics.RecordQueryError(queryMVP)
		return types.Entry{}, err
	}
	top, err := ranking.Top(records)
	if err != nil {
		metrics.RecordQueryError(queryMVP)
		return types.Entry{}, err
	}
	return types.NewEntry(1, top), nil
}

// Player returns one player's ranked entry and score breakdown.
func (s *Service) Player(ctx context.Context, id string) (types.Entry, scoring.Breakdown, error) {
	metrics.RecordQuery(queryPlayer)

	s.mu.RLock()
	defer s.mu.RUnlock()

	target, err := s.store.Get(ctx, id)
	if err != nil {
		metrics.RecordQueryError(queryPlayer)
		return types.Entry{}, scoring.Breakdown{}, err
	}
	ranked, err := s.ranked(ctx)
	if err != nil {
		metrics.RecordQueryError(queryPlayer)
		return types.Entry{}, scoring.Breakdown{}, err
	}
	for i, r := range ranked {
		if r == target {
			return types.NewEntry(i+1, r), scoring.Explain(r.Stats), nil
		}
	}
	metrics.RecordQueryError(queryPlayer)
	return types.Entry{}, scoring.Breakdown{}, fmt.Errorf("record %q: %w", id, repository.ErrNotFound)
}

// GetStats returns run metadata for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	records := s.store.All(ctx)
	evaluated := 0
	for _, r := range records {
		if r.Evaluated() {
			evaluated++
		}
	}

	stats := map[string]interface{}{
		"runId":     s.runID,
		"runs":      s.runs,
		"players":   len(records),
		"evaluated": evaluated,
		"ready":     len(records) > 0 && evaluated == len(records),
	}
	if !s.loadedAt.IsZero() {
		stats["loadedAt"] = s.loadedAt.UTC().Format(time.RFC3339)
	}
	if !s.evaluatedAt.IsZero() {
		stats["evaluatedAt"] = s.evaluatedAt.UTC().Format(time.RFC3339)
	}
	return stats
}

// scored returns the roster, refusing when any record is still unevaluated.
// Callers must hold s.mu.
func (s *Service) scored(ctx context.Context) ([]*model.Record, error) {
	records := s.store.All(ctx)
	if len(records) == 0 {
		return nil, ranking.ErrEmptyInput
	}
	for _, r := range records {
		if !r.Evaluated() {
			return nil, fmt.Errorf("player %q: %w", r.Name, ranking.ErrNotEvaluated)
		}
	}
	return records, nil
}

func (s *Service) ranked(ctx context.Context) ([]*model.Record, error) {
	records, err := s.scored(ctx)
	if err != nil {
		return nil, err
	}
	return ranking.Rank(records)
}
