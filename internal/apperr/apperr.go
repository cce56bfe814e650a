package apperr

import (
	"errors"
	"fmt"
)

// Sentinel errors for the folder subsystem. Services wrap these with path/name
// context via fmt.Errorf("%w: ..."); handlers map them to HTTP statuses with
// errors.Is.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrStore        = errors.New("store error")
)

func InvalidInput(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func NotFound(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func Conflict(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

// Store wraps an underlying persistence failure. The cause is preserved for
// logging but handlers surface only a generic message.
func Store(op string, cause error) error {
	return fmt.Errorf("%w: %s: %v", ErrStore, op, cause)
}
