package errors

import (
	stderrors "errors"
)

// ErrorResponse is the JSON body returned to clients. Exactly four keys;
// Details is always present and defaults to an empty object.
type ErrorResponse struct {
	Error   string         `json:"error"`
	Message string         `json:"message"`
	Code    ErrorCode      `json:"code"`
	Details map[string]any `json:"details"`
}

// ToResponse converts an AppError to its wire representation.
func (e *AppError) ToResponse() ErrorResponse {
	details := e.Details
	if details == nil {
		details = map[string]any{}
	}
	return ErrorResponse{
		Error:   e.Kind,
		Message: e.Message,
		Code:    e.Code,
		Details: details,
	}
}

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
