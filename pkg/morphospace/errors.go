package morphospace

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation is returned when a raw state is missing an axis,
	// names an unknown axis, or carries a value outside [0, 1].
	ErrValidation = errors.New("morphospace: validation failed")

	// ErrNotFound is returned when a canonical-state, archetype, or
	// preset id is not in the registry.
	ErrNotFound = errors.New("morphospace: not found")

	// ErrInvalidArgument is returned for unknown pattern names and
	// non-positive step, cycle, or keyframe counts.
	ErrInvalidArgument = errors.New("morphospace: invalid argument")
)

// ValidationError reports a single offending axis of a raw state.
// Out-of-range values are rejected, never clamped.
type ValidationError struct {
	Axis   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("morphospace: validation failed: axis %q: %s", e.Axis, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NotFoundError reports an unknown registry id together with the sorted
// list of valid ids, so the caller can self-correct.
type NotFoundError struct {
	Kind  string // registry kind, e.g. "state", "archetype", "preset"
	ID    string
	Valid []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("morphospace: %s %q not found (valid: %s)",
		e.Kind, e.ID, strings.Join(e.Valid, ", "))
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }
