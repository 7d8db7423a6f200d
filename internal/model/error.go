package model

import (
	"errors"
	"fmt"
)

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON   = "INVALID_JSON"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeValidation    = "VALIDATION_FAILED"
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// DomainError carries a stable code alongside a human-readable message.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrMenuItemNotFound = NewDomainError(ErrCodeNotFound, "Menu item not found")
	ErrSessionNotFound  = NewDomainError(ErrCodeNotFound, "Order session not found")
	ErrOrderNotFound    = NewDomainError(ErrCodeNotFound, "Order not found")
	ErrUserNotFound     = NewDomainError(ErrCodeNotFound, "User not found")
)

// IsNotFound reports whether err is a not-found domain error.
func IsNotFound(err error) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Code == ErrCodeNotFound
}

// FieldError names a single violated field in a request payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every violated field of a payload so the
// caller can fix and resubmit in one round trip.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e.Fields))
}

// AsValidation extracts a ValidationError from err if present.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
