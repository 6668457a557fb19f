package store

import "errors"

// Sentinel errors surfaced to callers. Handlers match with errors.Is and
// translate to HTTP statuses.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrInvalidTransition = errors.New("invalid status transition")
)
