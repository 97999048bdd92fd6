package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Domain errors represent failures surfaced to callers of the driver.
// None of them are retried or recovered locally.
var (
	// ErrValidation indicates missing or invalid local parameters.
	// It is always returned before any network call is attempted.
	ErrValidation = errors.New("validation failed")

	// ErrConnection indicates the TTP could not be reached.
	ErrConnection = errors.New("connection failed")

	// ErrService indicates the TTP answered with a non-success status
	// or a body that could not be decoded.
	ErrService = errors.New("service error")

	// ErrNotFound indicates the requested record is absent on the TTP.
	// A not-found ServiceError matches both ErrNotFound and ErrService.
	ErrNotFound = errors.New("not found")

	// ErrUnsupportedOperation indicates an operation that a resource does
	// not offer, such as updating a system-generated training record.
	ErrUnsupportedOperation = errors.New("unsupported operation")
)

// FieldError reports a missing or invalid parameter.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s: %s is required", ErrValidation, e.Field)
	}
	return fmt.Sprintf("%s: %s %s", ErrValidation, e.Field, e.Reason)
}

// Unwrap allows errors.Is(err, ErrValidation).
func (e *FieldError) Unwrap() error {
	return ErrValidation
}

// Missing returns a FieldError for an absent required field.
func Missing(field string) error {
	return &FieldError{Field: field}
}

// Invalid returns a FieldError for a field with an unacceptable value.
func Invalid(field, reason string) error {
	return &FieldError{Field: field, Reason: reason}
}

// ServiceError is returned when the TTP responds with a status other than
// 200 or 201.
type ServiceError struct {
	StatusCode int
	Method     string
	Path       string
	Body       string
}

func (e *ServiceError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: %s %s returned status %d", ErrService, e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s %s returned status %d: %s", ErrService, e.Method, e.Path, e.StatusCode, e.Body)
}

// Unwrap allows errors.Is(err, ErrService).
func (e *ServiceError) Unwrap() error {
	return ErrService
}

// Is reports a 404 as ErrNotFound in addition to ErrService.
func (e *ServiceError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// UnsupportedOperationError is returned by phase 2/3 resources for
// operations they do not offer.
type UnsupportedOperationError struct {
	Resource  Resource
	Operation string
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("%s task does not support '%s' operation", e.Resource, e.Operation)
}

// Unwrap allows errors.Is(err, ErrUnsupportedOperation).
func (e *UnsupportedOperationError) Unwrap() error {
	return ErrUnsupportedOperation
}

// Unsupported returns an UnsupportedOperationError.
func Unsupported(resource Resource, operation string) error {
	return &UnsupportedOperationError{Resource: resource, Operation: operation}
}
