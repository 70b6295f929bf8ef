// Package errors defines the application error taxonomy surfaced to the UI.
package errors

import (
	"net/http"

	"storefront/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Is matches errors by business error code so a WithDetails copy still
// compares equal to its predefined sentinel.
func (e *BaseError) Is(target error) bool {
	var base *BaseError
	if !errors.As(target, &base) {
		return false
	}

	return e.errorCode == base.errorCode
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Authentication errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Email or password is incorrect",
		"",
	)

	ErrAccountNotVerified = NewBaseError(
		http.StatusUnauthorized,
		"ACCOUNT_NOT_VERIFIED",
		"Please activate your email before logging in. Check your inbox for the activation link.",
		"",
	)

	ErrAuthRequired = NewBaseError(
		http.StatusUnauthorized,
		"AUTH_REQUIRED",
		"Please sign in to continue",
		"",
	)

	ErrSessionExpired = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_EXPIRED",
		"Your session has expired, please sign in again",
		"",
	)

	ErrRegistrationRejected = NewBaseError(
		http.StatusConflict,
		"REGISTRATION_REJECTED",
		"Registration was rejected by the server",
		"",
	)

	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrPasswordMismatch = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_MISMATCH",
		"Passwords do not match",
		"",
	)

	ErrPasswordTooShort = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_TOO_SHORT",
		"Password does not meet the minimum length requirement",
		"",
	)

	// Catalog errors
	ErrToolNotFound = NewBaseError(
		http.StatusNotFound,
		"TOOL_NOT_FOUND",
		"No catalog entry matches that name",
		"",
	)

	ErrToolUnavailable = NewBaseError(
		http.StatusConflict,
		"TOOL_UNAVAILABLE",
		"This tool is coming soon and cannot be purchased yet",
		"",
	)

	ErrAlreadyOwned = NewBaseError(
		http.StatusConflict,
		"ALREADY_OWNED",
		"You already own this tool",
		"",
	)

	// Cart errors
	ErrAlreadyInCart = NewBaseError(
		http.StatusConflict,
		"ALREADY_IN_CART",
		"This item is already in your cart",
		"",
	)

	ErrCartItemNotFound = NewBaseError(
		http.StatusNotFound,
		"CART_ITEM_NOT_FOUND",
		"This item is not in your cart",
		"",
	)

	// Backend errors
	ErrServer = NewBaseError(
		http.StatusBadGateway,
		"SERVER_ERROR",
		"The marketplace service returned an error, please try again later",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// NetworkError represents a transport-level failure reaching the backend,
// implementing the AppError interface.
type NetworkError struct {
	err     error
	details string
}

// NewNetworkError creates a transport-related error
func NewNetworkError(err error, details string) AppError {
	return &NetworkError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *NetworkError) Error() string {
	return errors.Wrap(e.err, "backend request failed").Error()
}

// Unwrap exposes the underlying transport error.
func (e *NetworkError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *NetworkError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

// ErrorCode returns the business error code
func (e *NetworkError) ErrorCode() string {
	return "NETWORK_ERROR"
}

// Message returns the user-friendly error message
func (e *NetworkError) Message() string {
	return "Unable to reach the marketplace service. Please check your connection and try again."
}

// Details returns detailed error information
func (e *NetworkError) Details() string {
	return e.details
}

// IsNetworkError reports whether err is a transport-level failure.
func IsNetworkError(err error) bool {
	var ne *NetworkError

	return errors.As(err, &ne)
}
