package errors

import (
	"net/http"

	"dispatch/internal/errors"
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
	// Order-related errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrOrderUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"ORDER_UPDATE_FAILED",
		"Failed to update order status",
		"",
	)

	// Store-related errors
	ErrStoreNotFound = NewBaseError(
		http.StatusNotFound,
		"STORE_NOT_FOUND",
		"Store not found",
		"",
	)

	ErrStoreClosed = NewBaseError(
		http.StatusConflict,
		"STORE_CLOSED",
		"Store is not accepting orders right now",
		"",
	)

	// Dispatch-related errors
	ErrOfferCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"OFFER_CREATION_FAILED",
		"Failed to create dispatch offers",
		"",
	)

	ErrBroadcastFailed = NewBaseError(
		http.StatusInternalServerError,
		"BROADCAST_FAILED",
		"Failed to broadcast offers to drivers",
		"",
	)

	// Subscription-related errors
	ErrSubscriptionNotFound = NewBaseError(
		http.StatusNotFound,
		"SUBSCRIPTION_NOT_FOUND",
		"Push subscription not found",
		"",
	)

	ErrSubscriptionInvalid = NewBaseError(
		http.StatusBadRequest,
		"SUBSCRIPTION_INVALID",
		"Push subscription payload is invalid",
		"",
	)

	// Input errors
	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Request input is invalid",
		"",
	)

	ErrRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"Too many requests, slow down",
		"",
	)
)

// NewDatabaseExecuteError wraps a low-level database error as an AppError
// while keeping the cause available for logging.
func NewDatabaseExecuteError(cause error, message string) error {
	base := NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_ERROR",
		message,
		cause.Error(),
	)

	return errors.Wrap(base, message)
}
