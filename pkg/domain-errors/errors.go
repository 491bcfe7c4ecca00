// Package domainerrors defines the coded errors services hand to the transport
// layer. Stores speak sentinels (pkg/platform/sentinel); services translate them
// into one of these codes so handlers never inspect infrastructure errors.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

type Code string

const (
	// CodeValidation rejects a request before any side effect. Field names the
	// offending input.
	CodeValidation Code = "validation_error"
	// CodeStorage covers an unreachable or rejecting persistence backend,
	// including the never-configured case.
	CodeStorage Code = "storage_error"
	// CodeBadRequest covers malformed request bodies (undecodable JSON).
	CodeBadRequest Code = "bad_request"
	CodeInternal   Code = "internal_error"
)

// Error carries a stable code for clients plus a human-readable message.
type Error struct {
	Code    Code
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Validation builds a CodeValidation error naming the offending field.
func Validation(field, reason string) *Error {
	return &Error{Code: CodeValidation, Field: field, Message: reason}
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// From extracts the coded error, or wraps err as CodeInternal so the transport
// layer always has something safe to render.
func From(err error) *Error {
	var de *Error
	if errors.As(err, &de) {
		return de
	}
	return &Error{Code: CodeInternal, Message: "internal error"}
}

// ToHTTPStatus maps codes onto HTTP statuses. Storage faults surface as a
// generic failure: the caller cannot fix them by changing the request.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeValidation, CodeBadRequest:
		return http.StatusBadRequest
	case CodeStorage, CodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
