package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrConcurrencyConflict signals that a competing transaction held or changed the same rows.
	// The whole operation may be retried; nothing from the failed attempt was committed.
	ErrConcurrencyConflict = errors.New("concurrency conflict")

	// ErrTimeout signals that the operation ran out of time before it could commit.
	ErrTimeout = errors.New("operation timed out")

	// ErrStorage is the catch-all category for persistence and transport failures.
	ErrStorage = errors.New("storage failure")
)

// ConcurrencyConflictError wraps the driver error behind a lock or serialization failure.
type ConcurrencyConflictError struct {
	Operation string
	Cause     error
}

// NewConcurrencyConflictError creates a ConcurrencyConflictError.
func NewConcurrencyConflictError(operation string, cause error) *ConcurrencyConflictError {
	return &ConcurrencyConflictError{Operation: operation, Cause: cause}
}

func (e *ConcurrencyConflictError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrConcurrencyConflict, e.Operation), e.Cause)
}

func (e *ConcurrencyConflictError) Unwrap() error {
	return ErrConcurrencyConflict
}

// TimeoutError wraps a deadline or statement cancellation.
type TimeoutError struct {
	Operation string
	Cause     error
}

// NewTimeoutError creates a TimeoutError.
func NewTimeoutError(operation string, cause error) *TimeoutError {
	return &TimeoutError{Operation: operation, Cause: cause}
}

func (e *TimeoutError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrTimeout, e.Operation), e.Cause)
}

func (e *TimeoutError) Unwrap() error {
	return ErrTimeout
}

// StorageError wraps any other persistence failure.
type StorageError struct {
	Operation string
	Cause     error
}

// NewStorageError creates a StorageError.
func NewStorageError(operation string, cause error) *StorageError {
	return &StorageError{Operation: operation, Cause: cause}
}

func (e *StorageError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrStorage, e.Operation), e.Cause)
}

func (e *StorageError) Unwrap() error {
	return ErrStorage
}

// IsRetryable reports whether err belongs to a category the caller may retry from scratch.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrConcurrencyConflict) || errors.Is(err, ErrTimeout) || errors.Is(err, ErrStorage)
}
