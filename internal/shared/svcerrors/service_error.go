package svcerrors

import (
	"errors"
	"fmt"
)

const (
	categoryInvalidArgument = "invalid_argument"
	categoryParse           = "parse"
	categoryIO              = "io"
	categoryInternal        = "internal"
)

const (
	errorCodeInternalPanic     = "SYS_9000"
	errorCodeInternalUndefined = "SYS_9001"
)

// Process exit codes by category.
const (
	ExitCodeInternal        = 1
	ExitCodeInvalidArgument = 2
	ExitCodeParse           = 3
	ExitCodeIO              = 4
)

// NewInvalidArgumentError creates a new ServiceError with category invalid_argument.
func NewInvalidArgumentError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryInvalidArgument,
		Code:     code,
		Message:  message,
		Cause:    cause,
		ExitCode: ExitCodeInvalidArgument,
	}
}

// NewParseError creates a new ServiceError with category parse.
// A parse error means the input log is malformed and the run cannot be trusted.
func NewParseError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryParse,
		Code:     code,
		Message:  message,
		Cause:    cause,
		ExitCode: ExitCodeParse,
	}
}

// NewIOError creates a new ServiceError with category io.
func NewIOError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryIO,
		Code:     code,
		Message:  message,
		Cause:    cause,
		ExitCode: ExitCodeIO,
	}
}

// NewInternalError creates a new ServiceError with category internal.
func NewInternalError(code string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryInternal,
		Code:     code,
		Message:  "internal error",
		Cause:    cause,
		ExitCode: ExitCodeInternal,
	}
}

// NewInternalErrorUndefined creates a new ServiceError with category internal and code SYS_9001.
func NewInternalErrorUndefined(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalUndefined, cause)
}

func NewInternalErrorPanic(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalPanic, cause)
}

// AsServiceError extracts a ServiceError from the error chain.
// It returns (*ServiceError, true) if err wraps a ServiceError, otherwise (nil, false).
func AsServiceError(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

// ServiceError represents a categorized error with a stable code, message, and cause.
// It implements the error interface and supports error wrapping.
type ServiceError struct {
	Category string // io, parse, invalid_argument or internal
	Code     string // package-owned stable code (e.g. READ_1000)
	Message  string // human-readable
	Cause    error  // wrapped underlying error
	ExitCode int    // process exit code
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error to support errors.Is and errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Cause
}

func (e *ServiceError) IsInternalError() bool {
	return e.Category == categoryInternal
}

// IsParseError reports whether the error came from a malformed input log.
func (e *ServiceError) IsParseError() bool {
	return e.Category == categoryParse
}

// IsIOError reports whether the error came from a missing or unreadable file.
func (e *ServiceError) IsIOError() bool {
	return e.Category == categoryIO
}

// ExitCodeOf returns the process exit code for err. Errors that are not
// ServiceErrors map to ExitCodeInternal; nil maps to 0.
func ExitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	if svcErr, ok := AsServiceError(err); ok {
		return svcErr.ExitCode
	}
	return ExitCodeInternal
}
