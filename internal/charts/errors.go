package charts

import (
	"fmt"

	"experiment-analytics/internal/shared/svcerrors"
)

// ChartRenderer errors
const (
	codeChartRenderFailed = "CHT_9000"
	codeChartWriteFailed  = "CHT_9001"
)

func errChartRenderFailed(name string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeChartRenderFailed, fmt.Errorf("renderFailed %s: %w", name, cause))
}

// errChartWriteFailed returns an error when a rendered chart cannot be stored.
func errChartWriteFailed(key string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewIOError(codeChartWriteFailed, fmt.Sprintf("%s: chart write failed", key), cause)
}
