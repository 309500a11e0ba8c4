package domain

import "errors"

// ErrNotFound is returned by repositories when a document does not exist.
var ErrNotFound = errors.New("not found")

// ValidationError marks user-supplied input that failed validation. It is
// mapped to a 400 at the transport boundary and never aborts processing
// beyond the request it belongs to.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ErrValidation wraps a message in a ValidationError.
func ErrValidation(msg string) error {
	return &ValidationError{Message: msg}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
