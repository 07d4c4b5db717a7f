package main

import (
	"traffic-analyzer/internal/shared/svcerrors"
)

const (
	codeInvalidUsage = "CLI_1000"
)

// errInvalidUsage returns an error for malformed command lines: unknown flags,
// unparsable flag values or a wrong number of positional arguments.
func errInvalidUsage(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidUsage, cause.Error(), cause)
}
