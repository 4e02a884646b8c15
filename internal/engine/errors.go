package engine

import (
	"errors"
	"fmt"
)

// ValidationError reports input rejected before any storage call: malformed
// template fields, or an attempt to mutate completion state for a future date.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// ErrConflict marks a unique-constraint violation on lazy row creation; two
// concurrent initializations raced and the caller should re-read the row.
var ErrConflict = errors.New("row already created concurrently")

// StorageError wraps a persistence failure. Write paths that read-then-write
// retry at least once before surfacing one of these.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// NewStorageError wraps err with the failing operation name.
func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

// IsConflict reports whether err stems from a concurrent-creation race.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}
