package service

import (
	"io"

	"github.com/okian/mvp/internal/adapters/repository"
	"github.com/okian/mvp/pkg/logger"
)

type settings struct {
	store       repository.Store
	logger      logger.Logger
	diagnostics io.Writer
}

// Option applies a configuration option to the Service.
type Option func(*settings)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStore replaces the default in-memory store.
func WithStore(store repository.Store) Option {
	return func(s *settings) {
		if store != nil {
			s.store = store
		}
	}
}

// WithDiagnostics sets where per-player score lines are written.
func WithDiagnostics(w io.Writer) Option {
	return func(s *settings) {
		s.diagnostics = w
	}
}
