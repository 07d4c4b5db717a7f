package filters

import (
	"traffic-analyzer/internal/shared/svcerrors"
)

const (
	codeInvalidFilterArgs = "FLT_1000"
)

// errInvalidFilterArgs returns an error when a filter flag cannot be turned into a predicate.
func errInvalidFilterArgs(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidFilterArgs, msg, cause)
}
