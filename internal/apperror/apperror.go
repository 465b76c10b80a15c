// Package apperror defines the error kinds the service layer returns and
// the HTTP layer translates. Handlers branch on the sentinel with errors.Is;
// the wrapping Error carries enough context (entity, field, id) to build a
// useful response body.
package apperror

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Every error crossing the service boundary wraps
// exactly one of these.
var (
	// ErrValidation is returned when an entity invariant is violated
	// (empty field, malformed email, start time not in the future).
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned when a referenced entity id does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a precondition fails against existing
	// state: registration window closed, duplicate email, email already
	// taken by a user, unknown role name on signup.
	ErrConflict = errors.New("conflict")

	// ErrUnauthorized is returned when identity claims are missing or
	// unparseable, or the caller's role lacks the required permission.
	ErrUnauthorized = errors.New("unauthorized")
)

// Error wraps a sentinel kind with context about what failed.
type Error struct {
	Kind    error  // one of the sentinels above
	Message string // human-readable detail
	Entity  string // entity kind involved ("event", "registration", "user")
	Field   string // field that failed validation, if any
	ID      string // entity id involved, if any
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Message)
	}
	return e.Kind.Error()
}

// Unwrap exposes the sentinel kind to errors.Is.
func (e *Error) Unwrap() error {
	return e.Kind
}

// Validation builds a ValidationError for a single field.
func Validation(entity, field, message string) *Error {
	return &Error{Kind: ErrValidation, Entity: entity, Field: field, Message: message}
}

// NotFound builds a NotFoundError for an entity id.
func NotFound(entity, id string) *Error {
	return &Error{Kind: ErrNotFound, Entity: entity, ID: id, Message: entity + " not found"}
}

// Conflict builds a ConflictError with a detail message.
func Conflict(entity, message string) *Error {
	return &Error{Kind: ErrConflict, Entity: entity, Message: message}
}

// Unauthorized builds an AuthorizationError with a detail message.
func Unauthorized(message string) *Error {
	return &Error{Kind: ErrUnauthorized, Message: message}
}
