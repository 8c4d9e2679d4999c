package roster

import "errors"

// Sentinel kinds for roster errors.
var (
	ErrEmptyRoster = errors.New("roster has no players")
)
