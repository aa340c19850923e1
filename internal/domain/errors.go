// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrInvalidID is returned when an ID is malformed or not a positive integer.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidDate is returned when a value cannot be interpreted as a
	// calendar date.
	ErrInvalidDate = errors.New("invalid date")

	// ErrFutureDate is returned when an incorporation date lies in the future.
	ErrFutureDate = errors.New("date cannot be in the future")

	// ErrInvalidStatus is returned when a case status is not one of the
	// allowed values.
	ErrInvalidStatus = errors.New("invalid case status")

	// ErrEmptyField is returned when a required text field is empty.
	ErrEmptyField = errors.New("field cannot be empty")
)

// ValidationError carries the field that failed validation together with a
// user-facing message. It wraps a sentinel error so callers can classify it
// with errors.Is.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped sentinel error to support errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}
