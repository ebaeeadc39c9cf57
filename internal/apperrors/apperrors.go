// Package apperrors carries the error kinds the API maps to HTTP statuses:
// validation (400), authentication (401), forbidden (403), not found (404),
// everything else (500).
package apperrors

import (
	"net/http"
)

type Kind int

const (
	Internal Kind = iota
	Validation
	Authentication
	Forbidden
	NotFound
)

type Error struct {
	Kind    Kind
	Message string
	// Fields holds serializer-style validation messages keyed by field name.
	// When set, the response body is this map instead of {"error": Message}.
	Fields map[string][]string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) StatusCode() int {
	switch e.Kind {
	case Validation:
		return http.StatusBadRequest
	case Authentication:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// NewValidation reports field-level validation failures.
func NewValidation(fields map[string][]string) *Error {
	return &Error{Kind: Validation, Message: "validation failed", Fields: fields}
}

// NewBadRequest reports a request-level validation failure with a single message.
func NewBadRequest(message string) *Error {
	return &Error{Kind: Validation, Message: message}
}

func NewAuthentication(message string) *Error {
	return &Error{Kind: Authentication, Message: message}
}

func NewForbidden(message string) *Error {
	return &Error{Kind: Forbidden, Message: message}
}

func NewNotFound(message string) *Error {
	return &Error{Kind: NotFound, Message: message}
}

func NewInternal(message string, err error) *Error {
	return &Error{Kind: Internal, Message: message, Err: err}
}
