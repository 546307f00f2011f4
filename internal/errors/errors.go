package errors

import (
	"fmt"
	"net/http"
)

// AppError is the unified application error type.
type AppError struct {
	// Kind is the concrete error kind name, e.g. "ClientInitializationError".
	Kind string `json:"error"`
	// Code is a machine-readable error code, stable across versions.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// HTTPStatus is the status the response layer uses for this error.
	// Zero means unset; such errors render with http.StatusBadRequest.
	HTTPStatus int `json:"-"`
	// Details contains additional JSON-serializable context. Never secrets.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error, if any.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// Status returns the HTTP status for the error, defaulting to 400 when no
// status was attached at construction.
func (e *AppError) Status() int {
	if e.HTTPStatus == 0 {
		return http.StatusBadRequest
	}
	return e.HTTPStatus
}

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError. Pass httpStatus 0 to use the 400 default.
func New(kind string, code ErrorCode, message string, httpStatus int) *AppError {
	return &AppError{
		Kind:       kind,
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// --- Concrete error kinds ---
//
// Constructors fix kind, code, message, and status; only the variable
// diagnostic details come from the call site.

// ClientInitialization creates the error raised when an API client fails to
// initialize. The cause is coerced to a string in the details.
func ClientInitialization(cause error) *AppError {
	err := &AppError{
		Kind:    "ClientInitializationError",
		Code:    ErrCodeClientInitialization,
		Message: "The client initialization failed.",
		Cause:   cause,
	}
	if cause != nil {
		err.Details = map[string]any{"cause": cause.Error()}
	}
	return err
}

// NotFound creates the error for a resource that was not found.
func NotFound(resource string) *AppError {
	return &AppError{
		Kind:       "NotFoundError",
		Code:       ErrCodeNotFound,
		Message:    fmt.Sprintf("The requested %s was not found.", resource),
		HTTPStatus: http.StatusNotFound,
		Details:    map[string]any{"resource": resource},
	}
}

// InvalidInput creates the error for invalid request input.
func InvalidInput(reason string) *AppError {
	return &AppError{
		Kind:    "InvalidInputError",
		Code:    ErrCodeInvalidInput,
		Message: fmt.Sprintf("Invalid input: %s", reason),
	}
}

// Configuration creates the error for invalid service configuration.
func Configuration(cause error) *AppError {
	err := &AppError{
		Kind:    "ConfigurationError",
		Code:    ErrCodeConfiguration,
		Message: "The service configuration is invalid.",
		Cause:   cause,
	}
	if cause != nil {
		err.Details = map[string]any{"cause": cause.Error()}
	}
	return err
}

// Internal creates the error for an unexpected internal failure.
func Internal(cause error) *AppError {
	return &AppError{
		Kind:       "InternalError",
		Code:       ErrCodeInternal,
		Message:    "An unexpected error occurred. Please try again or contact support.",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}
