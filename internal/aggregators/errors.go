package aggregators

import (
	"fmt"

	"experiment-analytics/internal/shared/svcerrors"
)

const (
	codeLossWindowStartOutOfRange = "AGG_1000"
	codeLossWindowSizeInvalid     = "AGG_1001"
	codeReplyLineMalformed        = "AGG_1002"
)

// errLossWindowStartOutOfRange returns an error when a loss window starts outside the sequence domain.
func errLossWindowStartOutOfRange(start int) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeLossWindowStartOutOfRange,
		fmt.Sprintf("loss window start %d outside sequence domain 0..%d", start, lastSequence), nil)
}

func errLossWindowSizeInvalid(size int) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeLossWindowSizeInvalid,
		fmt.Sprintf("loss window size must be positive, got %d", size), nil)
}

// errReplyLineMalformed returns an error when a reply line lacks its seq= or time= token.
func errReplyLineMalformed(lineNo int, cause error) *svcerrors.ServiceError {
	return svcerrors.NewParseError(codeReplyLineMalformed, fmt.Sprintf("reply %d: malformed ping reply", lineNo), cause)
}
