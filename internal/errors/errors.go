package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a category of application error.
type ErrorCode string

const (
	// ErrCodeValidation indicates invalid input data. Validation errors are
	// resolved locally and never reach the network.
	ErrCodeValidation ErrorCode = "validation"
	// ErrCodeRemote indicates the booking platform API rejected the request
	// with a decodable reason (authorization failure, not-found, conflict).
	ErrCodeRemote ErrorCode = "remote"
	// ErrCodeTransport indicates no usable response arrived at all
	// (network/DNS/timeout, or an undecodable body).
	ErrCodeTransport ErrorCode = "transport"
	// ErrCodeSessionExpired indicates the remote API no longer accepts the
	// session's bearer token.
	ErrCodeSessionExpired ErrorCode = "session_expired"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound ErrorCode = "not_found"
	// ErrCodeInternal indicates an internal error in this service.
	ErrCodeInternal ErrorCode = "internal"
)

// AppError represents a structured application error with a code, message, and
// optional cause. It supports error wrapping and unwrapping for use with
// errors.Is and errors.As.
type AppError struct {
	// Code categorizes the error type
	Code ErrorCode
	// Message is a human-readable error message. For remote errors this is
	// the server-reported message, verbatim.
	Message string
	// StatusCode is the HTTP status of the remote response, when one exists.
	StatusCode int
	// Cause is the underlying error that caused this error (optional)
	Cause error
	// Field is the specific field that caused the error (optional, for validation errors)
	Field string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Remote creates an error for a decodable remote rejection.
func Remote(statusCode int, message string) *AppError {
	return &AppError{
		Code:       ErrCodeRemote,
		Message:    message,
		StatusCode: statusCode,
	}
}

// Transport creates an error for a request that produced no usable response.
func Transport(message string) *AppError {
	return &AppError{
		Code:    ErrCodeTransport,
		Message: message,
	}
}

// TransportWrap wraps a transport-level failure, preserving the cause.
func TransportWrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeTransport,
		Message: message,
		Cause:   err,
	}
}

// SessionExpired creates an error for a rejected bearer token.
func SessionExpired(message string) *AppError {
	return &AppError{
		Code:    ErrCodeSessionExpired,
		Message: message,
	}
}

// NotFound creates a new NotFound error.
func NotFound(message string) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: message,
	}
}

// Validation creates a new Validation error.
func Validation(message string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: message,
	}
}

// ValidationField creates a new Validation error for a specific field.
func ValidationField(field, message string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: message,
		Field:   field,
	}
}

// Internal creates a new Internal error.
func Internal(message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
	}
}

// Internalf creates a new Internal error with formatted message.
func Internalf(format string, args ...any) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an existing error with an AppError, preserving the cause.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an existing error with an AppError and formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...any) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   err,
	}
}

// isCode checks if an error has a specific error code.
func isCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsValidation checks if an error is a Validation error.
func IsValidation(err error) bool {
	return isCode(err, ErrCodeValidation)
}

// IsRemote checks if an error is a Remote error.
func IsRemote(err error) bool {
	return isCode(err, ErrCodeRemote)
}

// IsTransport checks if an error is a Transport error.
func IsTransport(err error) bool {
	return isCode(err, ErrCodeTransport)
}

// IsSessionExpired checks if an error is a SessionExpired error.
func IsSessionExpired(err error) bool {
	return isCode(err, ErrCodeSessionExpired)
}

// IsNotFound checks if an error is a NotFound error.
func IsNotFound(err error) bool {
	return isCode(err, ErrCodeNotFound)
}

// IsInternal checks if an error is an Internal error.
func IsInternal(err error) bool {
	return isCode(err, ErrCodeInternal)
}

// GetCode returns the ErrorCode from an error, or empty string if not an AppError.
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// GetField returns the Field from an error, or empty string if not an AppError or no field set.
func GetField(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Field
	}
	return ""
}

// UserMessage extracts the message a user should see for an error. Remote and
// session-expired errors carry the server's own wording; transport errors get
// a stable generic line so transient network detail never leaks into the UI.
func UserMessage(err error) string {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return "An unexpected error occurred. Please try again."
	}
	switch appErr.Code {
	case ErrCodeRemote, ErrCodeSessionExpired, ErrCodeNotFound, ErrCodeValidation:
		return appErr.Message
	case ErrCodeTransport:
		return "The booking service could not be reached. Please try again."
	default:
		return "An unexpected error occurred. Please try again."
	}
}
