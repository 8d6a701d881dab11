// Package apierror defines the error kinds surfaced by the HTTP API.
package apierror

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the HTTP layer.
type Kind string

const (
	// KindValidation marks missing or invalid input.
	KindValidation Kind = "validation"
	// KindNotFound marks an unknown user or role.
	KindNotFound Kind = "not_found"
	// KindDatabase marks a failure of the underlying MySQL server.
	KindDatabase Kind = "database"
)

var (
	// ErrValidation matches every validation error via errors.Is.
	ErrValidation = &Error{Kind: KindValidation}
	// ErrNotFound matches every not found error via errors.Is.
	ErrNotFound = &Error{Kind: KindNotFound}
	// ErrDatabase matches every database error via errors.Is.
	ErrDatabase = &Error{Kind: KindDatabase}
)

// Error is an error carrying a Kind and a client facing message.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return string(e.Kind)
	}
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return t.Kind == e.Kind
}

// New wraps err with kind. The error text is the text of err.
func New(kind Kind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// Validation creates a validation error.
func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NotFound creates a not found error.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Database wraps a database failure. The driver message is passed through.
func Database(err error) *Error {
	return &Error{Kind: KindDatabase, Err: err}
}

// KindOf returns the kind of err, KindDatabase for unclassified errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return KindDatabase
}
