// Package errors provides structured error types for chartblocks.
//
// Every failure that can reach the user carries a machine-readable [Code] so
// the CLI and the preview server can decide how to report it:
//
//   - MALFORMED_INPUT: unrecognized mode token, non-numeric data field,
//     missing configuration row, empty input
//   - DIVIDE_BY_ZERO: a circular block whose weights sum to zero
//   - MISSING_RESOURCE: an input or config file that does not exist
//   - INVALID_*: bad configuration or flag values
//   - INTERNAL_ERROR: invariant violations inside the program
//
// # Usage
//
//	err := errors.New(errors.ErrCodeMalformedInput, "line %d: unknown mode %q", line, tok)
//	if errors.Is(err, errors.ErrCodeMalformedInput) {
//	    // report and halt
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeMissingResource, origErr, "open %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input errors
	ErrCodeMalformedInput  Code = "MALFORMED_INPUT"
	ErrCodeDivideByZero    Code = "DIVIDE_BY_ZERO"
	ErrCodeMissingResource Code = "MISSING_RESOURCE"

	// Configuration errors
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidFlag   Code = "INVALID_FLAG"

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

// Fatal reports whether err belongs to the fatal taxonomy that halts a run.
// MissingResource is the only recoverable input condition and is handled by
// the caller before it gets here.
func Fatal(err error) bool {
	switch GetCode(err) {
	case ErrCodeMalformedInput, ErrCodeDivideByZero, ErrCodeInternal:
		return true
	}
	return false
}
