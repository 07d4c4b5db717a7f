package svcerrors

import (
	"errors"
	"fmt"
)

const (
	categoryInvalidArgument = "invalid_argument"
	categoryNotFound        = "not_found"
	categoryUnavailable     = "unavailable"
	categoryInternal        = "internal"
)

// Process exit codes per category. Zero is reserved for success.
const (
	ExitCodeInternal        = 1
	ExitCodeInvalidArgument = 2
	ExitCodeInputUnusable   = 3
)

const (
	errorCodeInternalPanic     = "SYS_9000"
	errorCodeInternalUndefined = "SYS_9001"
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

// NewNotFoundError creates a new ServiceError with category not_found.
func NewNotFoundError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryNotFound,
		Code:     code,
		Message:  message,
		Cause:    cause,
		ExitCode: ExitCodeInputUnusable,
	}
}

// NewUnavailableError creates a new ServiceError with category unavailable.
// It is used for inputs that exist but cannot be read.
func NewUnavailableError(code, message string, cause error) *ServiceError {
	return &ServiceError{
		Category: categoryUnavailable,
		Code:     code,
		Message:  message,
		Cause:    cause,
		ExitCode: ExitCodeInputUnusable,
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

// ServiceError represents a service-level error with category, code, message, and cause.
// It implements the error interface and supports error wrapping.
type ServiceError struct {
	Category string // invalid_argument, not_found, unavailable or internal
	Code     string // service-owned stable code (e.g. ING_1000)
	Message  string // human-readable, printed on stderr
	Cause    error  // wrapped underlying error
	ExitCode int    // process exit code
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error to support errors.Is and errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Cause
}

func (e *ServiceError) IsInternalError() bool {
	return e.Category == categoryInternal
}

// ExitCodeOf maps any error to a process exit code. A nil error maps to 0 and
// errors outside the ServiceError taxonomy are treated as internal.
func ExitCodeOf(err error) int {
	if err == nil {
		return 0
	}
	if svcErr, ok := AsServiceError(err); ok {
		return svcErr.ExitCode
	}
	return ExitCodeInternal
}
