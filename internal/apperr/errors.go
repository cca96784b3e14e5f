package apperr

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned when the input fails domain validation.
var ErrInvalid = errors.New("invalid input")

// ErrConflict indicates a uniqueness or state conflict (HTTP 409).
var ErrConflict = errors.New("conflict")

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrForbidden indicates that the caller may not act on the resource.
var ErrForbidden = errors.New("forbidden")

// ErrUnauthorized indicates missing or bad credentials.
var ErrUnauthorized = errors.New("unauthorized")

// Dispatch and lifecycle errors.
var (
	ErrNotPending           = fmt.Errorf("%w: delivery is not pending", ErrConflict)
	ErrMissingFailureReason = errors.New("failure reason is required")
	ErrDriverNotFound       = fmt.Errorf("driver %w", ErrNotFound)
	ErrDeliveryNotFound     = fmt.Errorf("delivery %w", ErrNotFound)
	ErrNotEligible          = fmt.Errorf("%w: driver is not in the store pool", ErrForbidden)
	ErrNotAssignedDriver    = fmt.Errorf("%w: caller is not the assigned driver", ErrForbidden)
	ErrDriverBusy           = fmt.Errorf("%w: driver is being assigned elsewhere", ErrConflict)
)

// InvalidTransitionError reports a status pair that the actor's table does not allow.
type InvalidTransitionError struct {
	From string
	To   string
	Role string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition %s -> %s for %s", e.From, e.To, e.Role)
}

// Unwrap lets errors.Is(err, ErrConflict) match.
func (e *InvalidTransitionError) Unwrap() error { return ErrConflict }

// IsInvalidTransition reports whether err is an InvalidTransitionError.
func IsInvalidTransition(err error) bool {
	var ite *InvalidTransitionError
	return errors.As(err, &ite)
}
