package ranking

import (
	"errors"
	"fmt"
)

// Sentinel kinds for ranking errors.
var (
	ErrEmptyInput   = errors.New("no records to rank")
	ErrNotEvaluated = errors.New("ranking requested before evaluation")
)

// OrderingError is the panic value raised when an unevaluated record reaches
// the ranker. It indicates a sequencing bug in the caller.
type OrderingError struct {
	Record string
}

func (e *OrderingError) Error() string {
	return fmt.Sprintf("%s: record %q is unevaluated", ErrNotEvaluated, e.Record)
}

func (e *OrderingError) Unwrap() error { return ErrNotEvaluated }
