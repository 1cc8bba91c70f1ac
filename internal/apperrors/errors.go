package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrStorage indicates that the underlying storage failed to serve a request.
var ErrStorage = errors.New("storage failure")

// ValidationError is returned when an entity is rejected before any storage contact.
// Message is meant to be shown to the user as is.
type ValidationError struct {
	Rule    string
	Message string
}

// NewValidationError creates a ValidationError for the given rule.
func NewValidationError(rule, message string) *ValidationError {
	return &ValidationError{Rule: rule, Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is makes errors.Is(err, ErrValidation) match any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// StorageError wraps a failure coming from the database layer together with
// the entity and operation that triggered it.
type StorageError struct {
	Entity string
	Op     string
	Err    error
}

// NewStorageError creates a StorageError.
func NewStorageError(entity, op string, err error) *StorageError {
	return &StorageError{Entity: entity, Op: op, Err: err}
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Entity, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrStorage) match any StorageError.
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// NotFound wraps ErrNotFound with the entity and id that were missing.
func NotFound(entity string, id int64) error {
	return fmt.Errorf("%s %d: %w", entity, id, ErrNotFound)
}

// RuleOf returns the violated rule when err is a ValidationError.
func RuleOf(err error) (string, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Rule, true
	}
	return "", false
}
