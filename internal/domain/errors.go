package domain

import "errors"

var (
	ErrNotConfigured     = errors.New("database not configured")
	ErrBadID             = errors.New("invalid id")
	ErrNotFound          = errors.New("not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrUnauthorized      = errors.New("invalid admin key")
)

// ValidationError is a client-facing rejection. Its message is returned to
// the caller verbatim.
type ValidationError struct {
	Reason string
	Err    error
}

func (e *ValidationError) Error() string { return e.Reason }

func (e *ValidationError) Unwrap() error { return e.Err }

func Invalid(reason string, err error) *ValidationError {
	return &ValidationError{Reason: reason, Err: err}
}
