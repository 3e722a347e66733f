package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is the error type services hand back for expected business
// failures. Handlers map Status straight to the HTTP response code.
type AppError struct {
	Code    string
	Status  int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewNotFound(resource string) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Status:  http.StatusNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

func NewValidation(message string) *AppError {
	return &AppError{
		Code:    "VALIDATION_ERROR",
		Status:  http.StatusBadRequest,
		Message: message,
	}
}

func NewUnauthorized(message string) *AppError {
	return &AppError{
		Code:    "UNAUTHORIZED",
		Status:  http.StatusUnauthorized,
		Message: message,
	}
}

// NewCapacity marks a refused write that would push a collection past its
// configured ceiling.
func NewCapacity(message string) *AppError {
	return &AppError{
		Code:    "CAPACITY_EXCEEDED",
		Status:  http.StatusBadRequest,
		Message: message,
	}
}

// NewMinimumCount marks a refused delete that would shrink a collection
// below its configured floor.
func NewMinimumCount(message string) *AppError {
	return &AppError{
		Code:    "MINIMUM_COUNT",
		Status:  http.StatusBadRequest,
		Message: message,
	}
}

func NewUpload(message string) *AppError {
	return &AppError{
		Code:    "UPLOAD_FAILED",
		Status:  http.StatusBadRequest,
		Message: message,
	}
}

func NewInternal(message string, err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Status:  http.StatusInternalServerError,
		Message: message,
		Err:     err,
	}
}

// StatusOf returns the HTTP status for err, falling back to 500 for
// anything that is not an *AppError.
func StatusOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

// MessageOf returns the client-facing message for err. Non-AppError values
// are hidden behind a generic message so internals never leak.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Internal server error"
}
