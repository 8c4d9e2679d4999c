package repository

import "github.com/okian/mvp/internal/domain/model"

// Option applies a configuration option to the MemoryStore.
type Option func(*MemoryStore)

// WithCapacity preallocates room for n records.
func WithCapacity(n int) Option {
	return func(s *MemoryStore) {
		if n > 0 {
			s.records = make([]*model.Record, 0, n)
			s.byID = make(map[string]*model.Record, n)
		}
	}
}

// WithIDGenerator replaces the UUID generator used for records without an id.
func WithIDGenerator(gen func() string) Option {
	return func(s *MemoryStore) {
		if gen != nil {
			s.newID = gen
		}
	}
}
