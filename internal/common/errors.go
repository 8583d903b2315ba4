// Package common defines sentinel errors shared by the repository, service
// and transport layers. Callers should use errors.Is to match these values.
package common

import (
	"errors"
	"strings"
)

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Auth errors.
	ErrorUnauthorized       = errors.New("unauthorized")
	ErrorForbidden          = errors.New("forbidden")
	ErrorInvalidCredentials = errors.New("invalid credentials")

	// Validation errors.
	ErrorMissingFields = errors.New("missing required fields")
	ErrorNoFields      = errors.New("no fields provided")
	ErrorValidation    = errors.New("validation error")

	// Integrity errors (tag collision, referenced row).
	ErrorConflict = errors.New("conflict")
)

// Error attaches a user-facing message to one of the sentinel errors above.
// errors.Is(err, Kind) holds for any *Error.
type Error struct {
	Kind    error
	Message string
}

// Errorf returns an *Error of the given kind.
func Errorf(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// MissingFieldsError lists the required keys absent from a create request.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "Campos obligatorios: " + strings.Join(e.Fields, ", ")
}

func (e *MissingFieldsError) Unwrap() error {
	return ErrorMissingFields
}
