package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrConflict      = errors.New("conflict")

	// ErrNoMatch is returned by the matcher when no eligible candidate
	// exists for the requester.
	ErrNoMatch = errors.New("no match available")

	// ErrQuotaExceeded is returned when a free-tier user has exhausted
	// the free message allowance.
	ErrQuotaExceeded = errors.New("free message quota exceeded")

	// ErrModerationRejected is returned when a message body fails the
	// content moderation check.
	ErrModerationRejected = errors.New("message rejected by moderation")

	// ErrServiceUnavailable indicates an external collaborator (payment
	// provider, moderation service) failed or timed out.
	ErrServiceUnavailable = errors.New("service unavailable")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}
