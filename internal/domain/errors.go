package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound: the entity is missing, soft-deleted or owned by someone else.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists: a unique constraint rejected the write.
	ErrAlreadyExists = errors.New("already exists")
	// ErrValidation is the sentinel every *ValidationError unwraps to.
	ErrValidation = errors.New("validation error")
	// ErrUnauthorized: no user identity in the request context.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrDataAccess: the store was unreachable or the query failed.
	ErrDataAccess = errors.New("data access failure")
)

// FieldError is one rejected input field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects every rejected field of one input.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return fmt.Sprintf("validation: %s", strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Errors: []FieldError{{Field: field, Message: message}}}
}

// NewValidationErrors creates a ValidationError from several field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
