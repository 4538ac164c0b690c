package errors

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrorCode is the origin tag of a failure. Callers branch on it instead of
// matching message text.
type ErrorCode string

// Error codes for file operations
const (
	// ErrUnhandled is reported for errors that did not originate here
	ErrUnhandled ErrorCode = "UNHANDLED_ERROR"

	ErrFileNotFound       ErrorCode = "FILE_NOT_FOUND"
	ErrFileIsDirectory    ErrorCode = "FILE_IS_DIRECTORY"
	ErrFileRead           ErrorCode = "FILE_READ_ERROR"
	ErrFileWrite          ErrorCode = "FILE_WRITE_ERROR"
	ErrFileParse          ErrorCode = "FILE_PARSE_ERROR"
	ErrInvalidFindUpPath  ErrorCode = "INVALID_FIND_UP_PATH"
	ErrFileIsNotATemplate ErrorCode = "FILE_IS_NOT_A_TEMPLATE"
)

// Scope identifies who is expected to fix an error.
type Scope string

const (
	// ScopeCore errors come from the file toolkit itself
	ScopeCore Scope = "core"
	// ScopeTool errors come from a tool built on top of the toolkit
	ScopeTool Scope = "tool"
	// ScopeTemplate errors come from a template author
	ScopeTemplate Scope = "template"
)

// FilesError is a fatal, structured error with an origin code.
type FilesError struct {
	Code    ErrorCode
	Scope   Scope
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *FilesError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *FilesError) Unwrap() error {
	return e.Wrapped
}

// Is matches any FilesError with the same code.
func (e *FilesError) Is(target error) bool {
	var targetErr *FilesError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a core-scoped FilesError with the given code and message
func New(code ErrorCode, message string) *FilesError {
	return &FilesError{
		Code:    code,
		Scope:   ScopeCore,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a core-scoped FilesError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *FilesError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with a FilesError. Wrapping nil returns nil.
func Wrap(err error, code ErrorCode, message string) *FilesError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *FilesError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithScope overrides the scope of the error
func (e *FilesError) WithScope(scope Scope) *FilesError {
	e.Scope = scope
	return e
}

// WithDetail adds a detail to the error
func (e *FilesError) WithDetail(key string, value interface{}) *FilesError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *FilesError) WithDetails(details map[string]interface{}) *FilesError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var filesErr *FilesError
	if errors.As(err, &filesErr) {
		return filesErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnhandled if it is
// not a FilesError
func GetErrorCode(err error) ErrorCode {
	var filesErr *FilesError
	if errors.As(err, &filesErr) {
		return filesErr.Code
	}
	return ErrUnhandled
}

// GetErrorScope returns the scope of a FilesError, or ScopeCore for others
func GetErrorScope(err error) Scope {
	var filesErr *FilesError
	if errors.As(err, &filesErr) && filesErr.Scope != "" {
		return filesErr.Scope
	}
	return ScopeCore
}

// GetErrorDetails returns the details from an error, or nil if not a FilesError
func GetErrorDetails(err error) map[string]interface{} {
	var filesErr *FilesError
	if errors.As(err, &filesErr) {
		return filesErr.Details
	}
	return nil
}

// IsNotExist reports whether err says a path does not exist
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}

// AsFilesError returns the first FilesError in the chain of err
func AsFilesError(err error) (*FilesError, bool) {
	var filesErr *FilesError
	if errors.As(err, &filesErr) {
		return filesErr, true
	}
	return nil, false
}
