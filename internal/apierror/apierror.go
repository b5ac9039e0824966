// Package apierror defines the error taxonomy shared by all layers.
// Services return *apierror.Error values; handlers map the Kind to an HTTP
// status and the standard response envelope, so internal details (SQL, stack
// traces) never leak to clients.
package apierror

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Kind classifies an error for HTTP mapping and retry semantics.
type Kind int

const (
	// KindValidation: caller-supplied data fails a business rule. Never retried.
	KindValidation Kind = iota
	// KindNotFound: the requested id has no matching row.
	KindNotFound
	// KindConflict: uniqueness or referential constraint violation.
	KindConflict
	// KindPersistence: transaction/commit failure, connection loss. Partial
	// writes inside the atomic workflows are guaranteed rolled back.
	KindPersistence
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "persistence"
	}
}

// FieldError points at the offending input field.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Error is the tagged error carried across service boundaries.
type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldError
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// Validation builds a validation error with optional per-field details.
func Validation(msg string, fields ...FieldError) *Error {
	return &Error{Kind: KindValidation, Message: msg, Fields: fields}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Message: msg}
}

func Conflict(msg string) *Error {
	return &Error{Kind: KindConflict, Message: msg}
}

func Persistence(msg string, cause error) *Error {
	return &Error{Kind: KindPersistence, Message: msg, cause: cause}
}

// FromDB translates gorm sentinel errors into the taxonomy. Requires the
// connection to be opened with TranslateError so driver-level constraint
// violations surface as gorm.ErrDuplicatedKey / ErrForeignKeyViolated.
func FromDB(err error, notFoundMsg string) *Error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return NotFound(notFoundMsg)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return Conflict("A record with the same unique value already exists")
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return Conflict("The operation violates a referential constraint")
	default:
		return Persistence("Database operation failed", err)
	}
}

// AsError extracts a *Error, wrapping unknown errors as persistence failures.
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Persistence("Internal error", err)
}
