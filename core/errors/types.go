// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for better error handling and API responses

package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// DependencyError represents a transient failure of an external
// dependency (feed store, follower directory, cache, task queue).
// Work failing with a DependencyError is safe to retry.
type DependencyError struct {
	Dependency string
	Err        error
}

// Error implements the error interface
func (e *DependencyError) Error() string {
	return fmt.Sprintf("dependency %s failed: %v", e.Dependency, e.Err)
}

// Unwrap returns the underlying error
func (e *DependencyError) Unwrap() error {
	return e.Err
}

// TimeLimitError represents a unit of work exceeding its hard execution
// ceiling. Fatal for that unit: it is never retried automatically,
// otherwise a slow batch turns into a duplicate-insert storm.
type TimeLimitError struct {
	Task  string
	Limit string
}

// Error implements the error interface
func (e *TimeLimitError) Error() string {
	return fmt.Sprintf("task %s exceeded time limit of %s", e.Task, e.Limit)
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsDependency checks if an error is a DependencyError
func IsDependency(err error) bool {
	var depErr *DependencyError
	return errors.As(err, &depErr)
}

// IsTimeLimit checks if an error is a TimeLimitError
func IsTimeLimit(err error) bool {
	var timeLimitErr *TimeLimitError
	return errors.As(err, &timeLimitErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
