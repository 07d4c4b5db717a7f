package configs

import (
	"traffic-analyzer/internal/shared/svcerrors"
)

const (
	codeConfigUnreadable = "CFG_1000"
	codeConfigInvalid    = "CFG_1001"
)

// errConfigUnreadable returns an error when the config cannot be read or decoded.
func errConfigUnreadable(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeConfigUnreadable, msg, cause)
}

// errConfigInvalid returns an error when the resolved config fails validation.
func errConfigInvalid(msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeConfigInvalid, msg, cause)
}
