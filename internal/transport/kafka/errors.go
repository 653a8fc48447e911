package kafka

import (
	"errors"

	"service-checkout-delivery/internal/apperr"
)

// PermanentError marks a message that must not be redelivered.
type PermanentError struct {
	Err error
}

func (e PermanentError) Error() string {
	if e.Err == nil {
		return "permanent error"
	}
	return e.Err.Error()
}

func (e PermanentError) Unwrap() error { return e.Err }

// Permanent wraps err as PermanentError.
func Permanent(err error) error {
	return PermanentError{Err: err}
}

// IsPermanent reports whether redelivering the message cannot succeed.
// A checkout that is gone or an event the domain rejects stays that way.
func IsPermanent(err error) bool {
	var perm PermanentError
	return errors.As(err, &perm) ||
		errors.Is(err, apperr.ErrNotFound) ||
		errors.Is(err, apperr.ErrInvalid)
}
