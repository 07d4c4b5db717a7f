package app

import (
	"fmt"

	"traffic-analyzer/internal/shared/svcerrors"
)

const (
	codeInvalidLogFilePath = "APP_1000"
	codeInvalidOutputPath  = "APP_1001"

	codeInternalOutputFailed = "APP_9000"
)

// errInvalidLogFilePath returns an error when the positional log file argument cannot be resolved.
func errInvalidLogFilePath(path string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidLogFilePath, fmt.Sprintf("invalid log file path %q", path), cause)
}

// errInvalidOutputPath returns an error when the report output path cannot be resolved.
func errInvalidOutputPath(path string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidOutputPath, fmt.Sprintf("invalid report output path %q", path), cause)
}

// errInternalOutputFailed returns an error when the rendered report cannot be delivered.
func errInternalOutputFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalOutputFailed, fmt.Errorf("outputFailed: %w", cause))
}
