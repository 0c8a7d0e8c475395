package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails validation (missing location,
// cycle hours out of range, unresolvable address).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrUnplannable is returned when the input is well-formed but no legal
// plan exists for it, e.g. the cycle is already exhausted.
// Handlers should map this to HTTP 422 with a distinct error code.
var ErrUnplannable = errors.New("unplannable trip")

// ErrInvariant is returned when the planning engine produced an inconsistent
// result. It always indicates a bug and maps to HTTP 500.
var ErrInvariant = errors.New("internal invariant violation")

// InputError reports an invalid input field. It wraps ErrValidation.
type InputError struct {
	Field  string
	Value  any
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrValidation, e.Field, e.Reason)
}

func (e *InputError) Unwrap() error { return ErrValidation }

// UnplannableError explains why a trip cannot be planned. It wraps ErrUnplannable.
type UnplannableError struct {
	Reason    string
	CycleUsed float64
}

func (e *UnplannableError) Error() string {
	return fmt.Sprintf("%s: %s (cycle used %.2fh)", ErrUnplannable, e.Reason, e.CycleUsed)
}

func (e *UnplannableError) Unwrap() error { return ErrUnplannable }

// InvariantError names the consistency check that failed. It wraps ErrInvariant.
type InvariantError struct {
	Check  string
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvariant, e.Check, e.Detail)
}

func (e *InvariantError) Unwrap() error { return ErrInvariant }
