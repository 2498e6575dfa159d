package service

import "errors"

// Sentinel kinds for the service-layer error taxonomy. Handlers map
// these onto HTTP statuses; the carried message is what the caller
// sees, so it stays generic and never leaks store internals.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("invalid input")
)

// Error tags a human-readable message with one of the sentinel kinds.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

func notFound(message string) error {
	return &Error{Kind: ErrNotFound, Message: message}
}

func forbidden(message string) error {
	return &Error{Kind: ErrForbidden, Message: message}
}

func conflict(message string) error {
	return &Error{Kind: ErrConflict, Message: message}
}

func unauthorized(message string) error {
	return &Error{Kind: ErrUnauthorized, Message: message}
}

func invalid(message string) error {
	return &Error{Kind: ErrValidation, Message: message}
}
