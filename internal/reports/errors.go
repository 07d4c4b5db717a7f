package reports

import (
	"fmt"

	"traffic-analyzer/internal/shared/svcerrors"
)

const (
	codeUnsupportedFormat = "RPT_1000"

	codeInternalRenderFailed = "RPT_9000"
)

// errUnsupportedFormat returns an error when no renderer exists for the requested format.
func errUnsupportedFormat(format string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeUnsupportedFormat,
		fmt.Sprintf("unsupported report format %q: must be one of %v", format, Formats), nil)
}

// errInternalRenderFailed returns an error when encoding or writing the report fails.
func errInternalRenderFailed(format Format, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRenderFailed, fmt.Errorf("renderFailed(%s): %w", format, cause))
}
