package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"experiment-analytics/internal/models"
	"experiment-analytics/internal/shared/filestorages"
	"experiment-analytics/internal/shared/filestorages/mocks"
	"experiment-analytics/internal/shared/svcerrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newReport() *models.ExperimentReport {
	report := &models.ExperimentReport{
		RunID:       "01J9Z5X6C3M6R8Y7ZB8TQ2KQ4N",
		GeneratedAt: time.Date(2026, 10, 14, 9, 12, 3, 0, time.UTC),
		Flows: []models.FlowSeries{
			{Name: "Iperf1", Pattern: "s1-eth4"},
		},
		Delay: &models.DelayReport{LossWindowStart: 0, LossRate: 0.5},
		Summary: &models.SeriesSummary{
			AggregatePeakMbps: 20,
			Replies:           60,
		},
	}
	for i := 0; i < 10; i++ {
		report.AggregateSpeed[i] = 20
		report.Flows[0].Speed[i] = 20
	}
	report.TotalThroughput = report.AggregateSpeed.CumulativeSum()
	return report
}

func TestReportStore_Put_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewReportStore(mockFileStorage)

	ctx := context.Background()
	report := newReport()
	expectedKey := "reports/01J9Z5X6C3M6R8Y7ZB8TQ2KQ4N.json"

	mockFileStorage.EXPECT().
		Put(ctx, expectedKey, gomock.Any(), filestorages.PutOptions{AllowOverwrite: true}).
		DoAndReturn(func(ctx context.Context, key string, r io.Reader, opts filestorages.PutOptions) (*filestorages.PutResult, error) {
			data, err := io.ReadAll(r)
			require.NoError(t, err)

			var decoded models.ExperimentReport
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, *report, decoded)
			assert.Contains(t, string(data), `"runId": "01J9Z5X6C3M6R8Y7ZB8TQ2KQ4N"`)
			return &filestorages.PutResult{FileKey: key, Bytes: int64(len(data))}, nil
		})

	key, err := store.Put(ctx, report)
	require.NoError(t, err)
	assert.Equal(t, expectedKey, key)
}

func TestReportStore_Put_ErrReportPersistFailed(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewReportStore(mockFileStorage)

	ctx := context.Background()
	storageErr := errors.New("disk full")
	mockFileStorage.EXPECT().
		Put(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, storageErr)

	key, err := store.Put(ctx, newReport())

	assert.Empty(t, key)
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "STO_9000", svcErr.Code)
	assert.True(t, svcErr.IsIOError())
	assert.ErrorIs(t, err, storageErr)
}

func TestReportStore_Get_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewReportStore(mockFileStorage)

	ctx := context.Background()
	report := newReport()
	jsonData, err := json.Marshal(report)
	require.NoError(t, err)

	mockFileStorage.EXPECT().
		Get(ctx, "reports/01J9Z5X6C3M6R8Y7ZB8TQ2KQ4N.json").
		Return(io.NopCloser(bytes.NewReader(jsonData)), nil)

	got, err := store.Get(ctx, report.RunID)
	require.NoError(t, err)
	assert.Equal(t, report, got)
}

func TestReportStore_Get_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     io.ReadCloser
		err      error
		wantCode string
	}{
		{name: "not found", err: fmt.Errorf("%w: reports/x.json", filestorages.ErrFileNotFound), wantCode: "STO_1000"},
		{name: "storage failure", err: errors.New("permission denied"), wantCode: "STO_9001"},
		{name: "invalid json", body: io.NopCloser(bytes.NewReader([]byte("{"))), wantCode: "STO_9001"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockFileStorage := mocks.NewMockFileStorage(ctrl)
			store := NewReportStore(mockFileStorage)

			ctx := context.Background()
			mockFileStorage.EXPECT().Get(ctx, "reports/x.json").Return(tt.body, tt.err)

			report, err := store.Get(ctx, "x")

			assert.Nil(t, report)
			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok, "expected ServiceError")
			assert.Equal(t, tt.wantCode, svcErr.Code)
		})
	}
}

func TestReportStore_RoundTripThroughFileStorage(t *testing.T) {
	t.Parallel()

	fileStorage, err := filestorages.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	store := NewReportStore(fileStorage)

	ctx := context.Background()
	report := newReport()
	_, err = store.Put(ctx, report)
	require.NoError(t, err)

	// A second run with the same id replaces the first.
	report.Summary.Replies = 61
	_, err = store.Put(ctx, report)
	require.NoError(t, err)

	got, err := store.Get(ctx, report.RunID)
	require.NoError(t, err)
	assert.Equal(t, 61, got.Summary.Replies)
}

func TestReportStore_Delete(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStorage := mocks.NewMockFileStorage(ctrl)
	store := NewReportStore(mockFileStorage)

	ctx := context.Background()
	gomock.InOrder(
		mockFileStorage.EXPECT().Delete(ctx, "reports/x.json").Return(nil),
		mockFileStorage.EXPECT().Delete(ctx, "reports/y.json").Return(errors.New("read-only file system")),
	)

	require.NoError(t, store.Delete(ctx, "x"))

	svcErr, ok := svcerrors.AsServiceError(store.Delete(ctx, "y"))
	require.True(t, ok, "expected ServiceError")
	assert.Equal(t, "STO_9002", svcErr.Code)
}
