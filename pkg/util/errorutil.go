package util

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/spec-kit/listing-auth/internal/validation"
)

// DomainError standardizes application errors surfaced over HTTP. Message
// is the caller-visible body; Err stays internal and is only logged.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    []validation.FieldError
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewValidationFailed aggregates field violations into a 400 response.
func NewValidationFailed(details []validation.FieldError) error {
	return &DomainError{
		Code:       "VALIDATION_FAILED",
		Message:    "Validation failed",
		HTTPStatus: http.StatusBadRequest,
		Details:    details,
	}
}

// NewBadRequest covers malformed payloads.
func NewBadRequest(message string) error {
	return &DomainError{Code: "BAD_REQUEST", Message: message, HTTPStatus: http.StatusBadRequest}
}

// NewConflict reports duplicate-account conflicts. The public API returns
// 400 for duplicates, not 409.
func NewConflict(message string) error {
	return &DomainError{Code: "CONFLICT", Message: message, HTTPStatus: http.StatusBadRequest}
}

// NewUnauthorized reports failed authentication with a deliberately uniform
// message.
func NewUnauthorized(message string) error {
	return &DomainError{Code: "UNAUTHORIZED", Message: message, HTTPStatus: http.StatusUnauthorized}
}

// NewInternal wraps an unexpected failure behind an opaque message.
func NewInternal(message string, err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts arbitrary errors, defaulting to an opaque 500.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}
