// Package errors provides structured error types for the edgeviz application.
//
// Error codes give the CLI a small machine-readable taxonomy:
//
//	err := errors.New(errors.ErrCodeInputFile, "input %s is not readable", path)
//	if errors.Is(err, errors.ErrCodeInputFile) {
//	    // handle missing/unreadable input
//	}
//
// Existing errors can be wrapped while preserving the cause chain:
//
//	err := errors.Wrap(errors.ErrCodeOutputFile, origErr, "write %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the converter's failure taxonomy.
const (
	// ErrCodeInputFile indicates a missing or unreadable input path.
	ErrCodeInputFile Code = "INPUT_FILE"

	// ErrCodeOutputFile indicates an unwritable output path.
	ErrCodeOutputFile Code = "OUTPUT_FILE"

	// ErrCodeInvalidFormat indicates an unknown render format.
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"

	// ErrCodeInvalidGraph indicates an undecodable graph document.
	ErrCodeInvalidGraph Code = "INVALID_GRAPH"

	// ErrCodeInternal indicates an unexpected internal failure.
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

// Is reports whether err carries the given error code anywhere in its chain.
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
