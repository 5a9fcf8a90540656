// Package errors provides standardized error types and helpers for the sigla codebase.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	// ErrNotFound indicates a resource was not found
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput indicates invalid input or validation failure
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidReference indicates a string that does not form a valid scripture reference
	ErrInvalidReference = errors.New("invalid reference")
	// ErrEngineUnavailable indicates the OCR engine is not installed or not on PATH
	ErrEngineUnavailable = errors.New("ocr engine unavailable")
)

// NotFoundError represents a resource not found error with context
type NotFoundError struct {
	Resource string // Type of resource (e.g., "book", "verse", "translation")
	ID       string // Identifier of the resource
	Err      error  // Underlying error, if any
}

func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e *NotFoundError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrNotFound
}

// ValidationError represents an input validation error with context
type ValidationError struct {
	Field   string // Field name that failed validation
	Value   string // Value that failed validation (may be redacted)
	Message string // Human-readable error message
	Err     error  // Underlying error, if any
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// ParseError represents a reference-string parsing error.
// It always unwraps to ErrInvalidReference so callers can treat it as the
// recoverable invalid-reference signal rather than a pipeline failure.
type ParseError struct {
	Input   string // Reference string being parsed
	Message string // Error details
	Err     error  // Underlying error, if any
}

func (e *ParseError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("failed to parse reference %q: %s", e.Input, e.Message)
	}
	return fmt.Sprintf("failed to parse reference %q", e.Input)
}

func (e *ParseError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidReference
}

// ExtractionError represents a failure of the OCR boundary.
// An unavailable engine unwraps to ErrEngineUnavailable; other extraction
// failures carry the underlying exec error.
type ExtractionError struct {
	Engine string // Engine binary name (e.g., "tesseract")
	Err    error  // Underlying error
}

func (e *ExtractionError) Error() string {
	if e.Engine != "" {
		return fmt.Sprintf("text extraction failed (%s): %v", e.Engine, e.Err)
	}
	return fmt.Sprintf("text extraction failed: %v", e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// Helper functions for error checking

// IsNotFound checks if an error is or wraps ErrNotFound
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidReference checks if an error is or wraps ErrInvalidReference
func IsInvalidReference(err error) bool {
	return errors.Is(err, ErrInvalidReference)
}

// IsEngineUnavailable checks if an error is or wraps ErrEngineUnavailable
func IsEngineUnavailable(err error) bool {
	return errors.Is(err, ErrEngineUnavailable)
}

// Wrap wraps an error with additional context message
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}
