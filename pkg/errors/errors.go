// Package errors provides structured error types for the trendlens application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI and pipeline
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes distinguish the fatal preconditions of a run (missing or
// unparseable input, no analyzable data) from internal faults that a
// component caught and converted into a degraded result.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeFileNotFound, "no such file: %s", path)
//	if errors.Is(err, errors.ErrCodeFileNotFound) {
//	    // Handle the missing input file
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidFormat, origErr, "failed to read %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Fatal input errors
	ErrCodeFileNotFound  Code = "FILE_NOT_FOUND"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"

	// Fatal data errors
	ErrCodeEmptyDataset   Code = "EMPTY_DATASET"
	ErrCodeNoNumericData  Code = "NO_NUMERIC_DATA"
	ErrCodeColumnNotFound Code = "COLUMN_NOT_FOUND"

	// Degraded rendering errors
	ErrCodeRenderFailed Code = "RENDER_FAILED"

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
// It unwraps the error chain looking for an *Error with a matching code.
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
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsFatal reports whether err carries one of the codes that must abort a run:
// a missing or unparseable source file, no rows or numeric columns after
// cleaning, an unknown analysis column, or an unrecoverable internal fault.
func IsFatal(err error) bool {
	switch GetCode(err) {
	case ErrCodeFileNotFound, ErrCodeInvalidFormat, ErrCodeEmptyDataset,
		ErrCodeNoNumericData, ErrCodeColumnNotFound, ErrCodeInternal:
		return true
	}
	return false
}
