package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"experiment-analytics/internal/models"
	"experiment-analytics/internal/shared/filestorages"
)

// ReportStore persists experiment reports under reports/<run id>.json.
type ReportStore interface {
	// Put writes report as JSON, replacing any report of the same run, and
	// returns the storage key it was written to.
	Put(ctx context.Context, report *models.ExperimentReport) (string, error)
	Get(ctx context.Context, runID string) (*models.ExperimentReport, error)
	Delete(ctx context.Context, runID string) error
}

type reportStore struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewReportStore(fileStorage filestorages.FileStorage) ReportStore {
	return &reportStore{fileStorage: fileStorage, dir: "reports"}
}

func (s *reportStore) Put(ctx context.Context, report *models.ExperimentReport) (string, error) {
	jsonData, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", errReportPersistFailed(report.RunID, fmt.Errorf("failed to marshal report: %w", err))
	}
	result, err := s.fileStorage.Put(ctx, s.getKey(report.RunID), bytes.NewReader(jsonData), filestorages.PutOptions{AllowOverwrite: true})
	if err != nil {
		return "", errReportPersistFailed(report.RunID, err)
	}
	return result.FileKey, nil
}

func (s *reportStore) Get(ctx context.Context, runID string) (*models.ExperimentReport, error) {
	readCloser, err := s.fileStorage.Get(ctx, s.getKey(runID))
	if err != nil {
		return nil, errReportLoadFailed(runID, err)
	}
	defer readCloser.Close()

	data, err := io.ReadAll(readCloser)
	if err != nil {
		return nil, errReportLoadFailed(runID, fmt.Errorf("failed to read report: %w", err))
	}
	var report models.ExperimentReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, errReportLoadFailed(runID, fmt.Errorf("failed to unmarshal report: %w", err))
	}
	return &report, nil
}

func (s *reportStore) Delete(ctx context.Context, runID string) error {
	if err := s.fileStorage.Delete(ctx, s.getKey(runID)); err != nil {
		return errReportDeleteFailed(runID, err)
	}
	return nil
}

func (s *reportStore) getKey(runID string) string {
	return fmt.Sprintf("%s/%s.json", s.dir, runID)
}
