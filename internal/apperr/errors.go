// Package apperr defines the error taxonomy shared by repositories,
// services and HTTP handlers.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies the class of an application error
type Code string

const (
	CodeConflict     Code = "CONFLICT"
	CodeUnauthorized Code = "UNAUTHORIZED"
	CodeNotFound     Code = "NOT_FOUND"
	CodeValidation   Code = "VALIDATION_FAILED"
	CodeInternal     Code = "INTERNAL_ERROR"
)

// AppError carries a client-facing message and an optional cause that is
// only ever logged.
type AppError struct {
	Code    Code
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// StatusCode returns the HTTP status for the error class
func (e *AppError) StatusCode() int {
	switch e.Code {
	case CodeConflict:
		return http.StatusConflict
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeNotFound:
		return http.StatusNotFound
	case CodeValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func Conflict(message string) *AppError {
	return &AppError{Code: CodeConflict, Message: message}
}

func Unauthorized(message string) *AppError {
	if message == "" {
		message = "Could not validate credentials"
	}
	return &AppError{Code: CodeUnauthorized, Message: message}
}

// NotFound builds the "<Resource> not found" error
func NotFound(resource string) *AppError {
	return &AppError{Code: CodeNotFound, Message: resource + " not found"}
}

func Validation(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message}
}

// Internal wraps an unexpected failure. The cause never reaches the client.
func Internal(cause error) *AppError {
	return &AppError{Code: CodeInternal, Message: "Internal Server Error", Cause: cause}
}

// From returns err as an *AppError, treating anything unknown as Internal
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}

// Is reports whether err is an application error with the given code
func Is(err error, code Code) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}
