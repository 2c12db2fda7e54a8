package domain

import "errors"

// ErrBuyerNotResolved means a record references a buyer that could not be
// loaded. It signals broken referential integrity, not bad input.
var ErrBuyerNotResolved = errors.New("buyer not resolved")

// ValidationError is returned for requests that are rejected before any
// query runs. Message is safe to show to the caller.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
