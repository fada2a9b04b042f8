// Package errors provides structured error types for plotplotplot.
//
// Every failure the render pipeline can report carries a machine-readable
// code so the CLI can print a single diagnostic line and tests can assert on
// the failed precondition instead of matching strings.
//
// # Error Codes
//
// The render taxonomy:
//   - CONFIGURATION: missing or invalid settings, or a grouping rule that
//     references an unknown column
//   - EMPTY_INPUT: a table with zero columns, or nothing to render
//   - EMPTY_GROUP: a column group with no columns reached the renderer
//   - EXHAUSTED_RAMP: a color was requested for a zero-line figure
//   - IO: the output path is missing or not writable
//
// Input errors use INVALID_* codes, and FILE_NOT_FOUND covers unreadable
// input files.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeConfiguration, "missing key %q", "top")
//	if errors.Is(err, errors.ErrCodeConfiguration) {
//	    // Handle configuration error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeIO, origErr, "write %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Render pipeline errors
	ErrCodeConfiguration Code = "CONFIGURATION"
	ErrCodeEmptyInput    Code = "EMPTY_INPUT"
	ErrCodeEmptyGroup    Code = "EMPTY_GROUP"
	ErrCodeExhaustedRamp Code = "EXHAUSTED_RAMP"
	ErrCodeIO            Code = "IO"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPhase  Code = "INVALID_PHASE"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Resource not found errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It returns the code of the outermost *Error in the chain, so a
// CONFIGURATION error wrapping an IO error only matches CONFIGURATION.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message (and cause) without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return fmt.Sprintf("%s: %v", e.Message, e.Cause)
		}
		return e.Message
	}
	return err.Error()
}
