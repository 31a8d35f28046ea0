// Package common defines shared constants and sentinel errors used across
// client and server layers of todo-app. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound        = errors.New("not found")
	ErrDuplicateIdentity = errors.New("user with this email already exists")

	// Service-level errors (generic/internal flow control).
	ErrorUnauthorized = errors.New("invalid email or password")
	ErrSelfDeletion   = errors.New("cannot delete your own account")

	// Validation errors.
	ErrorMissingField = errors.New("missing required field")
	ErrorInvalidField = errors.New("invalid field")

	// Auth errors. Every token failure wraps ErrInvalidToken.
	ErrInvalidToken      = errors.New("invalid or expired token")
	ErrTokenMalformed    = errors.New("token malformed")
	ErrTokenBadSignature = errors.New("token signature mismatch")
	ErrTokenExpired      = errors.New("token expired")
)

// InputError is a validation failure whose message is safe to show to the
// caller. It unwraps to ErrorMissingField or ErrorInvalidField.
type InputError struct {
	Message string
	kind    error
}

func (e *InputError) Error() string { return e.Message }

func (e *InputError) Unwrap() error { return e.kind }

// MissingField reports an absent or blank required value.
func MissingField(msg string) error {
	return &InputError{Message: msg, kind: ErrorMissingField}
}

// InvalidField reports a present but unacceptable value.
func InvalidField(msg string) error {
	return &InputError{Message: msg, kind: ErrorInvalidField}
}
