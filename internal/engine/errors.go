package engine

import "errors"

var (
	// ErrNotFound means a referenced id does not exist in the snapshot.
	ErrNotFound = errors.New("not found")

	// ErrInvalidQuery means caller-supplied arguments violate a stated
	// precondition, such as an inverted date range or an unrecognized
	// filter key. Empty result sets are never reported as errors.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrNotReady means no snapshot has been loaded yet. Callers can
	// distinguish "not ready" from "no data".
	ErrNotReady = errors.New("no snapshot loaded")
)
