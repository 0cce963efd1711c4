package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrPermission   ErrorCode = "PERMISSION"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Projection errors
	ErrDuplicateDest ErrorCode = "DUPLICATE_DEST"

	// Library errors
	ErrLibraryScan  ErrorCode = "LIBRARY_SCAN"
	ErrSkillInvalid ErrorCode = "SKILL_INVALID"
	ErrVendorTree   ErrorCode = "VENDOR_TREE"

	// FileSystem errors
	ErrFileNotFound  ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess    ErrorCode = "FILE_ACCESS"
	ErrFileWrite     ErrorCode = "FILE_WRITE"
	ErrSymlinkCreate ErrorCode = "SYMLINK_CREATE"
	ErrDirCreate     ErrorCode = "DIR_CREATE"

	// Execution errors
	ErrActionInvalid ErrorCode = "ACTION_INVALID"
	ErrActionExecute ErrorCode = "ACTION_EXECUTE"

	// Notification errors
	ErrNotifySend ErrorCode = "NOTIFY_SEND"
)

// AidotError represents a structured error with code and details
type AidotError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *AidotError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *AidotError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *AidotError) Is(target error) bool {
	var targetErr *AidotError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new AidotError with the given code and message
func New(code ErrorCode, message string) *AidotError {
	return &AidotError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new AidotError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *AidotError {
	return &AidotError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an AidotError
func Wrap(err error, code ErrorCode, message string) *AidotError {
	if err == nil {
		return nil
	}
	return &AidotError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *AidotError {
	if err == nil {
		return nil
	}
	return &AidotError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *AidotError) WithDetail(key string, value interface{}) *AidotError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var aidotErr *AidotError
	if errors.As(err, &aidotErr) {
		return aidotErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an AidotError
func GetErrorCode(err error) ErrorCode {
	var aidotErr *AidotError
	if errors.As(err, &aidotErr) {
		return aidotErr.Code
	}
	return ErrUnknown
}
