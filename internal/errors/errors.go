package errors

import (
	stderrors "errors"
	"net/http"
)

// Error is the domain error type with structured metadata.
type Error struct {
	Code       Code              // Machine-readable error code
	Message    string            // Internal message (for logs/telemetry)
	Metadata   map[string]string // Additional context for templating
	Cause      error             // Wrapped underlying error
	HTTPStatus int               // Remote status code when a response was received
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a simple domain error with a code and message.
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// WithMetadata creates a domain error with metadata for i18n templating.
func WithMetadata(code Code, message string, metadata map[string]string) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Metadata: metadata,
	}
}

// Wrap creates a domain error that wraps an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Remote creates a domain error classified from a remote HTTP status.
func Remote(code Code, message string, status int) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		HTTPStatus: status,
	}
}

// GetCode extracts the error code from any error.
// Returns CodeUnknown if the error is not a domain error.
func GetCode(err error) Code {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// IsCode checks if the error has the specified code.
func IsCode(err error, code Code) bool {
	return GetCode(err) == code
}

// GetKind classifies any error into the taxonomy.
func GetKind(err error) Kind {
	return GetCode(err).Kind()
}

// GetMetadata extracts metadata from an error if present.
// Returns nil if the error is not a domain error or has no metadata.
func GetMetadata(err error) map[string]string {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Metadata
	}
	return nil
}

// GetHTTPStatus extracts the remote status code from an error.
// Returns 0 when no response was received or the error is not a domain error.
func GetHTTPStatus(err error) int {
	var e *Error
	if stderrors.As(err, &e) {
		return e.HTTPStatus
	}
	return 0
}

// IsNotFound reports whether err is a not-found lookup in either the remote
// service or local storage.
func IsNotFound(err error) bool {
	return GetKind(err) == KindNotFound
}

// StatusText returns a terse label for a remote status, falling back to the
// numeric form for statuses the standard library does not name.
func StatusText(status int) string {
	if text := http.StatusText(status); text != "" {
		return text
	}
	return "unexpected status"
}
