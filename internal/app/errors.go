package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrInvalidLimit = errors.New("limit must not be negative")
)
