package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates a record is absent. Weak references (deal→contact,
// deal→stage) treat it as "unset" at render time; direct lookups surface it.
var ErrNotFound = errors.New("not found")

// ValidationError rejects an operation before any storage write: a required
// field is missing or a transition precondition failed. State is unchanged.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
