package ir

import "errors"

var (
	// ErrMissingKey reports an absent table key.  It is distinct
	// from ErrTypeMismatch so callers can tell a missing key apart
	// from a wrongly typed value.
	ErrMissingKey = errors.New("missing key")

	// ErrTypeMismatch reports a typed accessor applied to a node of
	// another type.  There is no coercion between types.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrIndexRange reports an array index outside [0, len).
	ErrIndexRange = errors.New("index out of range")
)
