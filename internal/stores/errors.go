package stores

import (
	"errors"
	"fmt"

	"experiment-analytics/internal/shared/filestorages"
	"experiment-analytics/internal/shared/svcerrors"
)

// ReportStore errors
const (
	codeReportNotFound = "STO_1000"

	codeReportPersistFailed = "STO_9000"
	codeReportLoadFailed    = "STO_9001"
	codeReportDeleteFailed  = "STO_9002"
)

// errReportPersistFailed returns an error when a report cannot be encoded or written.
func errReportPersistFailed(runID string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewIOError(codeReportPersistFailed, fmt.Sprintf("report %s: persist failed", runID), cause)
}

// errReportLoadFailed maps a storage or decode failure when reading a report back.
func errReportLoadFailed(runID string, cause error) *svcerrors.ServiceError {
	if errors.Is(cause, filestorages.ErrFileNotFound) {
		return svcerrors.NewInvalidArgumentError(codeReportNotFound, fmt.Sprintf("report %s: not found", runID), cause)
	}
	return svcerrors.NewIOError(codeReportLoadFailed, fmt.Sprintf("report %s: load failed", runID), cause)
}

func errReportDeleteFailed(runID string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewIOError(codeReportDeleteFailed, fmt.Sprintf("report %s: delete failed", runID), cause)
}
