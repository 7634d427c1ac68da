package gateway

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType categorizes gateway failures
type ErrorType string

const (
	// ErrTypeNetwork indicates the request never got a response
	ErrTypeNetwork ErrorType = "network"

	// ErrTypeStatus indicates a non-success HTTP status
	ErrTypeStatus ErrorType = "status"

	// ErrTypeDecode indicates an unreadable or malformed body
	ErrTypeDecode ErrorType = "decode"

	// ErrTypeCanceled indicates the request context ended first
	ErrTypeCanceled ErrorType = "canceled"

	// ErrTypeInternal indicates a failure inside the gateway itself
	ErrTypeInternal ErrorType = "internal"
)

// Error is the failure half of a Result
type Error struct {
	// Type categorizes the error
	Type ErrorType `json:"type"`

	// Message is shown to the user as-is
	Message string `json:"message"`

	// StatusCode for HTTP status failures
	StatusCode int `json:"status_code,omitempty"`

	// URL that was requested
	URL string `json:"url,omitempty"`

	// Underlying error that caused this error
	Cause error `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	parts := []string{fmt.Sprintf("type=%s", e.Type)}

	if e.StatusCode > 0 {
		parts = append(parts, fmt.Sprintf("status=%d", e.StatusCode))
	}

	parts = append(parts, e.Message)

	if e.Cause != nil {
		parts = append(parts, fmt.Sprintf("cause=%s", e.Cause.Error()))
	}

	return strings.Join(parts, ": ")
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches another *Error of the same type
func (e *Error) Is(target error) bool {
	if ge, ok := target.(*Error); ok {
		return e.Type == ge.Type
	}
	return false
}

// NewError creates a gateway error
func NewError(errType ErrorType, message string) *Error {
	return &Error{Type: errType, Message: message}
}

// NewErrorWithCause creates a gateway error wrapping cause
func NewErrorWithCause(errType ErrorType, message string, cause error) *Error {
	return &Error{Type: errType, Message: message, Cause: cause}
}

// IsStatus reports whether err is a gateway status error with the given code
func IsStatus(err error, code int) bool {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Type == ErrTypeStatus && ge.StatusCode == code
	}
	return false
}
