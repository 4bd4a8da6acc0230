package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrConstraintViolation is returned when a write would break a uniqueness or check constraint.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrParentNotFound is returned when a child row references a missing parent.
	ErrParentNotFound = errors.New("parent record not found")

	// ErrStoreUnavailable is returned when the store could not be reached or a
	// write could not be confirmed.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// StoreError pairs one of the sentinels above with the driver error that caused it,
// so callers can match with errors.Is and still log the original cause.
type StoreError struct {
	Sentinel error
	Cause    error
}

func (e *StoreError) Error() string {
	if e.Cause == nil {
		return e.Sentinel.Error()
	}
	return fmt.Sprintf("%s: %v", e.Sentinel, e.Cause)
}

func (e *StoreError) Is(target error) bool { return errors.Is(e.Sentinel, target) }
func (e *StoreError) Unwrap() error        { return e.Cause }
