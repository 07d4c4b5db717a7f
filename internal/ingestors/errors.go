package ingestors

import (
	"fmt"

	"traffic-analyzer/internal/shared/svcerrors"
)

// IngestionService errors
const (
	codeLogFileNotFound   = "ING_1000"
	codeLogFileUnreadable = "ING_1001"
	codeInvalidLogFileKey = "ING_1002"

	codeInternalIngestionAborted = "ING_9000"
)

// errLogFileNotFound returns an error when the input log file does not exist.
func errLogFileNotFound(key string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeLogFileNotFound, fmt.Sprintf("log file %q not found", key), cause)
}

// errLogFileUnreadable returns an error when the input log file exists but cannot be read.
func errLogFileUnreadable(key string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeLogFileUnreadable, fmt.Sprintf("log file %q is not readable: %v", key, cause), cause)
}

// errInvalidLogFileKey returns an error when the log file name cannot be resolved.
func errInvalidLogFileKey(key string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidLogFileKey, fmt.Sprintf("invalid log file name %q", key), cause)
}

// errInternalIngestionAborted returns an error when ingestion is cancelled before it finished.
func errInternalIngestionAborted(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalIngestionAborted, fmt.Errorf("ingestionAborted: %w", cause))
}
