package domain

import "errors"

// Lookup misses are returned, never panicked: an absent mentor or mentee is a
// normal, displayable condition for callers. Mutation failures carry one of
// the sentinel errors below so adapters can map them to a rejected operation
// with a reason.
var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateKey       = errors.New("duplicate key")
	ErrCapacityExceeded   = errors.New("capacity exceeded")
	ErrInvalidTransition  = errors.New("invalid transition")
	ErrInvariantViolation = errors.New("invariant violation")
)
