package scoring

import (
	"io"

	"github.com/okian/mvp/pkg/logger"
)

// Option applies a configuration option to the Evaluator.
type Option func(*Evaluator)

// WithLogger sets the structured logger used for per-record debug output.
func WithLogger(l logger.Logger) Option {
	return func(e *Evaluator) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithDiagnostics sets where the "Player: <name> Points: <score>" lines go.
func WithDiagnostics(w io.Writer) Option {
	return func(e *Evaluator) {
		if w != nil {
			e.diagnostics = w
		}
	}
}
