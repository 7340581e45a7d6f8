package services

import "fmt"

// NotFoundError reports that a referenced entity does not exist
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// ValidationError reports malformed or out-of-range input, scoped per field
type ValidationError struct {
	Fields map[string][]string
}

func (e *ValidationError) Error() string {
	return "validation error"
}

// NewFieldError builds a ValidationError for a single field
func NewFieldError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string][]string{field: {message}}}
}

// ConflictError reports a duplicate unique key, e.g. an already registered email
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}
