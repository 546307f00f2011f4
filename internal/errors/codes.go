package errors

// ErrorCode represents a machine-readable error code. The set is closed and
// append-only: new failure kinds get a new code, codes are never reused for
// a different meaning.
type ErrorCode string

const (
	// ErrCodeClientInitialization indicates an API client failed to initialize.
	ErrCodeClientInitialization ErrorCode = "CLIENT_INITIALIZATION_ERROR"
	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeConfiguration indicates the service configuration is invalid.
	ErrCodeConfiguration ErrorCode = "CONFIGURATION_ERROR"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)
