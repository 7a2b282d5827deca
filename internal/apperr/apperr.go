// Package apperr defines the error kinds surfaced by the API and how they
// map onto HTTP responses.
package apperr

import (
	"errors"
	"net/http"
)

type Kind string

const (
	KindUnauthenticated    Kind = "unauthenticated"
	KindInvalidCredentials Kind = "invalid_credentials"
	KindValidation         Kind = "validation_failed"
	KindInvalidCategory    Kind = "invalid_category"
	KindConflict           Kind = "conflict"
	KindNotFound           Kind = "not_found"
	KindInternal           Kind = "internal"
)

// Error is a classified application error. Extra is merged into the JSON
// error body as top-level keys.
type Error struct {
	Kind    Kind
	Message string
	Field   string
	Extra   map[string]interface{}
	Err     error
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

// Status returns the HTTP status code for the error kind.
func (e *Error) Status() int {
	return StatusOf(e.Kind)
}

// Body renders the error as the JSON payload sent to clients.
func (e *Error) Body() map[string]interface{} {
	body := make(map[string]interface{}, len(e.Extra)+4)
	for k, v := range e.Extra {
		body[k] = v
	}
	body["success"] = false
	body["code"] = e.Kind
	body["error"] = e.Message
	if e.Field != "" {
		body["field"] = e.Field
	}
	return body
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Validation reports a missing or malformed request field.
func Validation(field, message string) *Error {
	return &Error{Kind: KindValidation, Message: message, Field: field}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// As extracts an *Error from err. Anything unclassified becomes an
// internal error wrapping the original.
func As(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(KindInternal, "Internal server error", err)
}

// Is reports whether err carries the given kind.
func Is(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}

func StatusOf(kind Kind) int {
	switch kind {
	case KindUnauthenticated, KindInvalidCredentials:
		return http.StatusUnauthorized
	case KindValidation, KindInvalidCategory, KindConflict:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
