package model

import (
	"errors"
	"fmt"
)

// Sentinel kinds for record errors.
var (
	ErrInvalidRecord    = errors.New("invalid record")
	ErrAlreadyEvaluated = errors.New("record already evaluated")
)

// ValidationError describes a malformed record. It matches ErrInvalidRecord
// through errors.Is.
type ValidationError struct {
	Record string // player name when known
	Field  string
	Reason string
	Err    error // underlying decode error, if any
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: %s %s", ErrInvalidRecord, e.Field, e.Reason)
	if e.Record != "" {
		msg = fmt.Sprintf("%s: %q: %s %s", ErrInvalidRecord, e.Record, e.Field, e.Reason)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the sentinel kind and the wrapped cause.
func (e *ValidationError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvalidRecord, e.Err}
	}
	return []error{ErrInvalidRecord}
}
