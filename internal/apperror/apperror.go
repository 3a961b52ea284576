package apperror

import (
	"errors"
	"net/http"
)

// Error is a service-level failure carrying the HTTP status it should be
// reported with. Anything else reaching the boundary is treated as a 500.
type Error struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

func New(statusCode int, message string) *Error {
	return &Error{StatusCode: statusCode, Message: message}
}

// NotFound reports a missing entity on an update-style operation.
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

// BadRequest reports a store-rejected mutation.
func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

// Configuration reports a missing required reference row, e.g. the
// "Fuel Expense" head the fuel-status report depends on.
func Configuration(message string) *Error {
	return New(http.StatusBadRequest, message)
}

func Internal(message string) *Error {
	return New(http.StatusInternalServerError, message)
}

// StatusOf extracts the HTTP status for err, defaulting to 500 for
// unclassified store failures.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return http.StatusInternalServerError
}
