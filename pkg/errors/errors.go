package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType classifies an application error.
type ErrorType string

const (
	// ErrorTypeNotFound indicates a resource was not found.
	ErrorTypeNotFound ErrorType = "NOT_FOUND"
	// ErrorTypeBadRequest indicates a malformed or invalid request.
	ErrorTypeBadRequest ErrorType = "BAD_REQUEST"
	// ErrorTypeConflict indicates a uniqueness or state conflict.
	ErrorTypeConflict ErrorType = "CONFLICT"
	// ErrorTypeUnauthorized indicates failed authentication.
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"
	// ErrorTypeForbidden indicates insufficient permissions.
	ErrorTypeForbidden ErrorType = "FORBIDDEN"
	// ErrorTypeInternal indicates an unexpected internal failure.
	ErrorTypeInternal ErrorType = "INTERNAL"
)

// AppError is the error type carried across service and handler layers.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error.
func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new application error.
func New(errorType ErrorType, message string) error {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

// Wrap wraps an error with an application error.
func Wrap(errorType ErrorType, message string, err error) error {
	return &AppError{
		Type:    errorType,
		Message: message,
		Err:     err,
	}
}

// NotFound creates a not found error.
func NotFound(message string) error {
	return New(ErrorTypeNotFound, message)
}

// BadRequest creates a bad request error.
func BadRequest(message string) error {
	return New(ErrorTypeBadRequest, message)
}

// Conflict creates a conflict error.
func Conflict(message string) error {
	return New(ErrorTypeConflict, message)
}

// Unauthorized creates an unauthorized error.
func Unauthorized(message string) error {
	return New(ErrorTypeUnauthorized, message)
}

// Forbidden creates a forbidden error.
func Forbidden(message string) error {
	return New(ErrorTypeForbidden, message)
}

// Internal creates an internal error.
func Internal(message string) error {
	return New(ErrorTypeInternal, message)
}

// TypeOf returns the classification of err, or ErrorTypeInternal for
// errors that did not originate from this package.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeInternal
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return is(err, ErrorTypeNotFound)
}

// IsBadRequest checks if an error is a bad request error.
func IsBadRequest(err error) bool {
	return is(err, ErrorTypeBadRequest)
}

// IsConflict checks if an error is a conflict error.
func IsConflict(err error) bool {
	return is(err, ErrorTypeConflict)
}

// IsUnauthorized checks if an error is an unauthorized error.
func IsUnauthorized(err error) bool {
	return is(err, ErrorTypeUnauthorized)
}

// IsForbidden checks if an error is a forbidden error.
func IsForbidden(err error) bool {
	return is(err, ErrorTypeForbidden)
}

// IsInternal checks if an error is an internal error.
func IsInternal(err error) bool {
	return is(err, ErrorTypeInternal)
}

func is(err error, t ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == t
	}
	return false
}

// IsDuplicateError checks if an error is a database duplicate key error.
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "duplicate key") ||
		strings.Contains(errStr, "UNIQUE constraint") ||
		strings.Contains(errStr, "duplicate entry")
}
