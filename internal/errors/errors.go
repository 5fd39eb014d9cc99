// Package apperrors defines the optimizer's structured error types and exit
// codes, distinguishing configuration mistakes, invalid dimension input, and
// report-write failures from generic errors.
//
// Wrapping follows the standard conventions: fmt.Errorf with %w, and Unwrap
// on types that carry a cause, so errors.Is and errors.As work across chains.
package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Exit codes reported to the OS.
const (
	ExitSuccess       = 0   // Successful run.
	ExitErrorGeneric  = 1   // Generic failure, including report-write errors.
	ExitErrorTimeout  = 2   // The run exceeded its time limit.
	ExitErrorConfig   = 4   // Invalid flags, environment, or input.
	ExitErrorCanceled = 130 // Canceled, typically by SIGINT.
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect
// user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// ValidationError represents an error due to invalid input validation, such
// as a degenerate dimension sequence or an out-of-range Catalan index.
type ValidationError struct {
	// Field is the name of the input that failed validation.
	Field string
	// Message describes why validation failed.
	Message string
	// Value is the invalid value (optional, may be nil).
	Value any
}

// Error returns the error message for a ValidationError.
func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// NewValidationError creates a new ValidationError.
//
// Parameters:
//   - field: The name of the input that failed validation.
//   - message: A description of why validation failed.
//   - value: The invalid value (optional).
//
// Returns:
//   - error: A new ValidationError instance.
func NewValidationError(field, message string, value any) error {
	return ValidationError{Field: field, Message: message, Value: value}
}

// ReportError represents a failure while writing the result report, e.g. an
// unwritable output path. It is non-fatal to the computation already
// performed: the in-memory result stays valid.
type ReportError struct {
	// Path is the output file path that could not be written.
	Path string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message for a ReportError.
func (e ReportError) Error() string {
	return fmt.Sprintf("failed to write report to %s: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying error.
func (e ReportError) Unwrap() error { return e.Cause }

// NewReportError creates a new ReportError for the given path and cause.
func NewReportError(path string, cause error) error {
	return ReportError{Path: path, Cause: cause}
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline
// exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
