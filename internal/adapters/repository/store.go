// Package repository holds the roster of scoring records for a run.
package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/okian/mvp/internal/domain/model"
	"github.com/okian/mvp/pkg/metrics"
)

// Store provides read/write access to the roster.
type Store interface {
	// Add validates and appends a record. No deduplication is performed.
	Add(ctx context.Context, r *model.Record) error

	// All returns every record in insertion order.
	All(ctx context.Context) []*model.Record

	// Get returns the record with the given store id.
	// Returns ErrNotFound if the id is unknown.
	Get(ctx context.Context, id string) (*model.Record, error)

	// Len returns the number of records held.
	Len(ctx context.Context) int

	// Reset drops every record.
	Reset(ctx context.Context)
}

var _ Store = (*MemoryStore)(nil)

// MemoryStore keeps records in a slice, preserving insertion order.
type MemoryStore struct {
	mu      sync.RWMutex
	records []*model.Record
	byID    map[string]*model.Record
	newID   func() string
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		byID:  make(map[string]*model.Record),
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add validates r, assigns an id when it has none, and appends it.
func (s *MemoryStore) Add(_ context.Context, r *model.Record) error {
	if err := r.Validate(); err != nil {
		return fmt.Errorf("add record: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if r.ID == "" {
		r.ID = s.newID()
	}
	if _, taken := s.byID[r.ID]; taken {
		return fmt.Errorf("add record: %w", &model.ValidationError{Record: r.Name, Field: "id", Reason: "is already in use"})
	}
	s.records = append(s.records, r)
	s.byID[r.ID] = r
	metrics.RecordRecordLoaded()
	metrics.UpdateRosterSize(len(s.records))
	return nil
}

// All returns a fresh slice holding the stored record pointers in insertion order.
func (s *MemoryStore) All(_ context.Context) []*model.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Get retrieves a record by id.
func (s *MemoryStore) Get(_ context.Context, id string) (*model.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("record %q: %w", id, ErrNotFound)
	}
	return r, nil
}

// Len returns the number of records.
func (s *MemoryStore) Len(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Reset drops every record.
func (s *MemoryStore) Reset(_ context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = s.records[:0:0]
	s.byID = make(map[string]*model.Record)
	metrics.UpdateRosterSize(0)
}
