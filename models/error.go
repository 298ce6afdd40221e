package models

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrorMessageResponse returns the error message response struct
type ErrorMessageResponse struct {
	Response MessageError
}

// MessageError contains the inner details for the error message response
type MessageError struct {
	Message string
	Error   string
	Fields  map[string]string `json:",omitempty"`
}

// HealthCheckResponse is the body of the health endpoint
type HealthCheckResponse struct {
	Alive bool `json:"alive"`
}

var (
	// ErrInput signals missing or malformed request parameters
	ErrInput = errors.New("invalid input")
	// ErrValidation signals a record that failed field validation
	ErrValidation = errors.New("validation failed")
	// ErrNotFound signals a referenced crime report or officer that does not exist
	ErrNotFound = errors.New("not found")
	// ErrConflict signals a duplicate upvote or crime report
	ErrConflict = errors.New("conflict")
	// ErrStore signals a failure inside the document store
	ErrStore = errors.New("store failure")
)

// InputError is raised before any store access when a parameter is missing or malformed
type InputError struct {
	Param  string
	Reason string
}

// NewInputError creates an InputError for the given parameter
func NewInputError(param, reason string) error {
	return &InputError{Param: param, Reason: reason}
}

func (e *InputError) Error() string {
	if e.Param == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s %s", e.Param, e.Reason)
}

func (e *InputError) Unwrap() error { return ErrInput }

// ValidationError collects every field that failed validation, keyed by field name
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError returns nil when fields is empty
func NewValidationError(fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NotFoundError is returned when a referenced entity is absent
type NotFoundError struct {
	Message string
}

// NewNotFoundError formats a NotFoundError message
func NewNotFoundError(format string, args ...interface{}) error {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

func (e *NotFoundError) Error() string { return e.Message }

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// ConflictError is returned when a write would duplicate an existing document
type ConflictError struct {
	Message string
}

// NewConflictError formats a ConflictError message
func NewConflictError(format string, args ...interface{}) error {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}

func (e *ConflictError) Error() string { return e.Message }

func (e *ConflictError) Unwrap() error { return ErrConflict }

// StoreError wraps a failure of the underlying document store
type StoreError struct {
	Op  string
	Err error
}

// NewStoreError wraps err as a StoreError for the named operation
func NewStoreError(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap matches both ErrStore and the driver error
func (e *StoreError) Unwrap() []error { return []error{ErrStore, e.Err} }
