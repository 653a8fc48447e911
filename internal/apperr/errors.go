package apperr

import "errors"

// ErrInvalid is returned when the input fails domain validation.
var ErrInvalid = errors.New("invalid input")

// ErrConflict indicates a uniqueness or state conflict (HTTP 409).
var ErrConflict = errors.New("conflict")

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrInvalidSelection is returned when a delivery method outside the valid set is chosen.
var ErrInvalidSelection = errors.New("invalid delivery method selection")

// ErrSuperseded signals that a concurrent write made a refresh result obsolete.
// It never leaves the delivery service.
var ErrSuperseded = errors.New("superseded by a concurrent update")

// ErrProviderUnavailable marks a single external provider failure.
// It never leaves the provider gateway.
var ErrProviderUnavailable = errors.New("delivery provider unavailable")

// ErrPersistence wraps storage failures during the locked write.
var ErrPersistence = errors.New("persistence failure")
