package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode represents a category of application error.
type ErrorCode string

const (
	// ErrCodeAuth indicates the backend rejected the request as unauthenticated (401).
	ErrCodeAuth ErrorCode = "auth"
	// ErrCodePermission indicates the authenticated user lacks rights (403).
	ErrCodePermission ErrorCode = "permission"
	// ErrCodeBadRequest indicates missing or malformed parameters (400).
	ErrCodeBadRequest ErrorCode = "bad_request"
	// ErrCodeServer indicates a backend failure (500).
	ErrCodeServer ErrorCode = "server"
	// ErrCodeUnknown indicates any other backend status.
	ErrCodeUnknown ErrorCode = "unknown"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound ErrorCode = "not_found"
	// ErrCodeValidation indicates invalid input data.
	ErrCodeValidation ErrorCode = "validation"
	// ErrCodeInternal indicates a local failure.
	ErrCodeInternal ErrorCode = "internal"
	// ErrCodeTimeout indicates a timeout occurred.
	ErrCodeTimeout ErrorCode = "timeout"
	// ErrCodeCanceled indicates the operation was canceled.
	ErrCodeCanceled ErrorCode = "canceled"
)

// AppError represents a structured application error with a code, message, and optional cause.
// Status holds the HTTP status a backend answered with, when the error came from one.
type AppError struct {
	Code    ErrorCode
	Status  int
	Message string
	Cause   error
	Field   string
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

// FromStatus classifies a backend HTTP status.
func FromStatus(status int, message string) *AppError {
	code := ErrCodeUnknown
	switch status {
	case http.StatusUnauthorized:
		code = ErrCodeAuth
	case http.StatusForbidden:
		code = ErrCodePermission
	case http.StatusBadRequest:
		code = ErrCodeBadRequest
	case http.StatusNotFound:
		code = ErrCodeNotFound
	case http.StatusInternalServerError:
		code = ErrCodeServer
	}
	if message == "" {
		message = http.StatusText(status)
	}
	return &AppError{Code: code, Status: status, Message: message}
}

// Auth creates a 401 error.
func Auth(message string) *AppError { return FromStatus(http.StatusUnauthorized, message) }

// Permission creates a 403 error.
func Permission(message string) *AppError { return FromStatus(http.StatusForbidden, message) }

// BadRequest creates a 400 error.
func BadRequest(message string) *AppError { return FromStatus(http.StatusBadRequest, message) }

// Server creates a 500 error.
func Server(message string) *AppError { return FromStatus(http.StatusInternalServerError, message) }

// NotFound creates a new NotFound error.
func NotFound(message string) *AppError {
	return &AppError{Code: ErrCodeNotFound, Status: http.StatusNotFound, Message: message}
}

// ValidationField creates a new Validation error for a specific field.
// Validation errors surface to users as 400.
func ValidationField(field, message string) *AppError {
	return &AppError{Code: ErrCodeValidation, Status: http.StatusBadRequest, Message: message, Field: field}
}

// Internal creates a new Internal error.
func Internal(message string) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: message}
}

// Wrap wraps an existing error with an AppError, preserving the cause.
func Wrap(err error, code ErrorCode, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{Code: code, Message: message, Cause: err}
}

// Wrapf wraps an existing error with an AppError and formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...any) *AppError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

func isCode(err error, code ErrorCode) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsAuth checks if an error is a 401 AuthError.
func IsAuth(err error) bool { return isCode(err, ErrCodeAuth) }

// IsPermission checks if an error is a 403 PermissionError.
func IsPermission(err error) bool { return isCode(err, ErrCodePermission) }

// IsBadRequest checks if an error is a 400 BadRequestError.
func IsBadRequest(err error) bool { return isCode(err, ErrCodeBadRequest) }

// IsServer checks if an error is a 500 ServerError.
func IsServer(err error) bool { return isCode(err, ErrCodeServer) }

// IsNotFound checks if an error is a NotFound error.
func IsNotFound(err error) bool { return isCode(err, ErrCodeNotFound) }

// IsValidation checks if an error is a Validation error.
func IsValidation(err error) bool { return isCode(err, ErrCodeValidation) }

// IsTimeout checks if an error is a Timeout error.
func IsTimeout(err error) bool { return isCode(err, ErrCodeTimeout) }

// IsCanceled checks if an error is a Canceled error.
func IsCanceled(err error) bool { return isCode(err, ErrCodeCanceled) }

// GetCode returns the ErrorCode from an error, or empty string if not an AppError.
func GetCode(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// StatusOf returns the HTTP status carried by err, or 0 when it carries none.
// Errors that never reached a backend report 0 and map to the default message.
func StatusOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return 0
}
