package readers

import (
	"errors"
	"fmt"

	"experiment-analytics/internal/shared/filestorages"
	"experiment-analytics/internal/shared/svcerrors"
)

const (
	codeRateLineMalformed = "READ_1000"
	codeRateLogEmpty      = "READ_1001"

	codeLogNotFound   = "READ_9000"
	codeLogReadFailed = "READ_9001"
)

// errRateLineMalformed returns an error when a rate log line cannot be split into the expected fields.
func errRateLineMalformed(key string, lineNo int, msg string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewParseError(codeRateLineMalformed, fmt.Sprintf("%s:%d: %s", key, lineNo, msg), cause)
}

func errRateLogEmpty(key string) *svcerrors.ServiceError {
	return svcerrors.NewParseError(codeRateLogEmpty, fmt.Sprintf("%s: rate log has no records", key), nil)
}

// errLogOpenFailed maps a storage error to a not-found or read failure.
func errLogOpenFailed(key string, cause error) *svcerrors.ServiceError {
	if errors.Is(cause, filestorages.ErrFileNotFound) {
		return svcerrors.NewIOError(codeLogNotFound, fmt.Sprintf("log file %q not found", key), cause)
	}
	return errLogReadFailed(key, cause)
}

func errLogReadFailed(key string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewIOError(codeLogReadFailed, fmt.Sprintf("log file %q unreadable", key), cause)
}
