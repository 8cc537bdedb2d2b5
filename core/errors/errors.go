// Package errors provides the error types shared across the quranfix
// codebase.
package errors

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the sentinel behind input that fails parsing or
// shape checks.
var ErrInvalidInput = errors.New("invalid input")

// IOError represents a file operation error with context.
type IOError struct {
	Operation string // Operation being performed (e.g., "read", "write", "open")
	Path      string // File path involved
	Err       error  // Underlying error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to %s: %v", e.Operation, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ParseError represents a deserialization error.
type ParseError struct {
	Format  string // Format being parsed (e.g., "JSON")
	Path    string // File path, if applicable
	Message string // Error details
	Err     error  // Underlying error, if any
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to parse %s at %s: %s", e.Format, e.Path, e.Message)
	}
	return fmt.Sprintf("failed to parse %s: %s", e.Format, e.Message)
}

func (e *ParseError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// ShapeError represents a document that decodes cleanly but does not
// match the structure a correction assumes. The run aborts before any
// mutation happens.
type ShapeError struct {
	Want   string // Expected document shape
	Detail string // What was missing or wrong
}

func (e *ShapeError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("unexpected document shape: want %s: %s", e.Want, e.Detail)
	}
	return fmt.Sprintf("unexpected document shape: want %s", e.Want)
}

func (e *ShapeError) Unwrap() error {
	return ErrInvalidInput
}

// NewIO creates an IOError.
func NewIO(operation, path string, err error) *IOError {
	return &IOError{
		Operation: operation,
		Path:      path,
		Err:       err,
	}
}

// NewParse creates a ParseError.
func NewParse(format, path, message string) *ParseError {
	return &ParseError{
		Format:  format,
		Path:    path,
		Message: message,
	}
}

// NewShape creates a ShapeError.
func NewShape(want, detail string) *ShapeError {
	return &ShapeError{
		Want:   want,
		Detail: detail,
	}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// Is wraps errors.Is for convenience.
func Is(err, target error) bool {
	return errors.Is(err, target)
}
