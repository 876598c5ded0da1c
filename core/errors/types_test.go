package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError_Error(t *testing.T) {
	err := &NotFoundError{
		Resource: "newsfeed",
		ID:       "123",
	}

	expected := "newsfeed not found: 123"
	if err.Error() != expected {
		t.Errorf("NotFoundError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Field:   "post_id",
		Message: "cannot be empty",
	}

	expected := "validation error on field 'post_id': cannot be empty"
	if err.Error() != expected {
		t.Errorf("ValidationError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestDependencyError_Error(t *testing.T) {
	err := &DependencyError{
		Dependency: "feed store",
		Err:        errors.New("database locked"),
	}

	expected := "dependency feed store failed: database locked"
	if err.Error() != expected {
		t.Errorf("DependencyError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestDependencyError_Unwrap(t *testing.T) {
	inner := errors.New("connection refused")
	err := &DependencyError{Dependency: "cache", Err: inner}

	if !errors.Is(err, inner) {
		t.Error("DependencyError should unwrap to the inner error")
	}
}

func TestTimeLimitError_Error(t *testing.T) {
	err := &TimeLimitError{
		Task:  "fanout batch",
		Limit: "1h0m0s",
	}

	expected := "task fanout batch exceeded time limit of 1h0m0s"
	if err.Error() != expected {
		t.Errorf("TimeLimitError.Error() = %v, want %v", err.Error(), expected)
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(&NotFoundError{Resource: "newsfeed", ID: "abc"}) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
	if IsNotFound(errors.New("some other error")) {
		t.Error("IsNotFound should return false for other errors")
	}
	if IsNotFound(nil) {
		t.Error("IsNotFound should return false for nil")
	}
}

func TestIsValidation(t *testing.T) {
	if !IsValidation(&ValidationError{Field: "user_id", Message: "cannot be empty"}) {
		t.Error("IsValidation should return true for ValidationError")
	}
	if IsValidation(errors.New("some other error")) {
		t.Error("IsValidation should return false for other errors")
	}
}

func TestIsValidation_Wrapped(t *testing.T) {
	inner := &ValidationError{Field: "post_id", Message: "cannot be empty"}
	wrapped := fmt.Errorf("rejected: %w", inner)

	if !IsValidation(wrapped) {
		t.Error("IsValidation should see through wrapping")
	}
}

func TestIsDependency(t *testing.T) {
	if !IsDependency(&DependencyError{Dependency: "task queue", Err: errors.New("down")}) {
		t.Error("IsDependency should return true for DependencyError")
	}
	if IsDependency(errors.New("some other error")) {
		t.Error("IsDependency should return false for other errors")
	}
}

func TestIsDependency_Wrapped(t *testing.T) {
	inner := &DependencyError{Dependency: "feed store", Err: errors.New("locked")}
	wrapped := fmt.Errorf("batch failed: %w", inner)

	if !IsDependency(wrapped) {
		t.Error("IsDependency should see through wrapping")
	}
}

func TestIsTimeLimit(t *testing.T) {
	if !IsTimeLimit(&TimeLimitError{Task: "fanout batch", Limit: "1h"}) {
		t.Error("IsTimeLimit should return true for TimeLimitError")
	}
	if IsTimeLimit(&DependencyError{Dependency: "cache", Err: errors.New("down")}) {
		t.Error("IsTimeLimit should return false for DependencyError")
	}
}

func TestWrapError(t *testing.T) {
	inner := errors.New("original")
	wrapped := WrapError(inner, "context")

	expected := "context: original"
	if wrapped.Error() != expected {
		t.Errorf("WrapError() = %v, want %v", wrapped.Error(), expected)
	}
	if !errors.Is(wrapped, inner) {
		t.Error("wrapped error should match the original with errors.Is")
	}
}

func TestWrapError_Nil(t *testing.T) {
	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should return nil")
	}
}
