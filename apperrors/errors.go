// Package apperrors defines the error taxonomy shared by all services. Each
// error carries a stable code, a short title and a user-facing description so
// controllers can render toast-shaped payloads without leaking internals.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

type Code string

const (
	CodeValidation        Code = "validation_error"
	CodeAuthorization     Code = "authorization_error"
	CodeInvalidTransition Code = "invalid_transition"
	CodeConflict          Code = "conflict"
	CodeTimeout           Code = "timeout"
	CodeNotFound          Code = "not_found"
	CodeInternal          Code = "internal"
)

type Error struct {
	Code        Code
	Title       string
	Description string
	Err         error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Description, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

func (e *Error) Unwrap() error { return e.Err }

// HTTPStatus maps the taxonomy onto transport codes.
func (e *Error) HTTPStatus() int {
	switch e.Code {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeAuthorization:
		return http.StatusForbidden
	case CodeInvalidTransition, CodeConflict:
		return http.StatusConflict
	case CodeTimeout:
		return http.StatusGatewayTimeout
	case CodeNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func Validation(format string, args ...interface{}) *Error {
	return &Error{Code: CodeValidation, Title: "Invalid input", Description: fmt.Sprintf(format, args...)}
}

func Authorization(format string, args ...interface{}) *Error {
	return &Error{Code: CodeAuthorization, Title: "Not allowed", Description: fmt.Sprintf(format, args...)}
}

func InvalidTransition(format string, args ...interface{}) *Error {
	return &Error{Code: CodeInvalidTransition, Title: "Invalid status change", Description: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...interface{}) *Error {
	return &Error{Code: CodeConflict, Title: "Concurrent update", Description: fmt.Sprintf(format, args...)}
}

func Timeout(op string, err error) *Error {
	return &Error{Code: CodeTimeout, Title: "Request timed out", Description: op + " timed out", Err: err}
}

func NotFound(format string, args ...interface{}) *Error {
	return &Error{Code: CodeNotFound, Title: "Not found", Description: fmt.Sprintf(format, args...)}
}

func Internal(desc string, err error) *Error {
	return &Error{Code: CodeInternal, Title: "Something went wrong", Description: desc, Err: err}
}

// CodeOf extracts the taxonomy code from any error, defaulting to internal.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeInternal
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	return CodeOf(err) == code
}
