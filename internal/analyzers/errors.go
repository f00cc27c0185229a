package analyzers

import (
	"fmt"

	"experiment-analytics/internal/shared/svcerrors"
)

// AnalysisService errors
const (
	codeFlowPatternInvalid = "ANA_1000"

	codeInternalAnalysisFailed = "ANA_9000"
)

// errFlowPatternInvalid returns an error when a flow or aggregate pattern does not compile.
func errFlowPatternInvalid(name, pattern string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeFlowPatternInvalid,
		fmt.Sprintf("flow %q: invalid interface pattern %q", name, pattern), cause)
}

// asServiceError keeps the category of errors raised by readers and
// aggregators and wraps anything else as internal.
func asServiceError(err error) *svcerrors.ServiceError {
	if svcErr, ok := svcerrors.AsServiceError(err); ok {
		return svcErr
	}
	return svcerrors.NewInternalError(codeInternalAnalysisFailed, fmt.Errorf("analysisFailed: %w", err))
}
