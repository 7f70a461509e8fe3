// Package errors provides coded errors for scaffy.
//
// Codes are stable strings so tests and the CLI can branch on the kind of
// failure without matching messages.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"
	ErrCancelled     ErrorCode = "CANCELLED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Substitution errors
	ErrInvalidPlaceholder ErrorCode = "INVALID_PLACEHOLDER"
	ErrUnknownFormatter   ErrorCode = "UNKNOWN_FORMATTER"
	ErrReservedName       ErrorCode = "RESERVED_NAME"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrFileRename   ErrorCode = "FILE_RENAME"
)

// ScaffyError represents a structured error with code and details
type ScaffyError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ScaffyError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ScaffyError) Unwrap() error {
	return e.Wrapped
}

// Is matches any ScaffyError carrying the same code
func (e *ScaffyError) Is(target error) bool {
	var targetErr *ScaffyError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ScaffyError with the given code and message
func New(code ErrorCode, message string) *ScaffyError {
	return &ScaffyError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ScaffyError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ScaffyError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *ScaffyError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ScaffyError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *ScaffyError) WithDetail(key string, value interface{}) *ScaffyError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var scaffyErr *ScaffyError
	if errors.As(err, &scaffyErr) {
		return scaffyErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ScaffyError
func GetErrorCode(err error) ErrorCode {
	var scaffyErr *ScaffyError
	if errors.As(err, &scaffyErr) {
		return scaffyErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ScaffyError
func GetErrorDetails(err error) map[string]interface{} {
	var scaffyErr *ScaffyError
	if errors.As(err, &scaffyErr) {
		return scaffyErr.Details
	}
	return nil
}
