package readers

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"experiment-analytics/internal/models"
	"experiment-analytics/internal/shared/filestorages"
	"experiment-analytics/internal/shared/loggers"

	"github.com/spf13/cast"
)

// Positions of the fields used from a bwm-ng CSV line.
const (
	fieldAbsoluteSecond     = 0
	fieldInterfaceName      = 1
	fieldBytesOutRate       = 2
	fieldCumulativeBytesOut = 6

	minRateFields = fieldCumulativeBytesOut + 1
)

//go:generate mockgen -source=rate_log_reader.go -destination=./mocks/rate_log_reader_mock.go -package=mocks
type RateLogReader interface {
	// Read parses the rate log stored at key and drops its incomplete final second.
	Read(ctx context.Context, key string) (*models.RateLog, error)
}

type rateLogReader struct {
	fileStorage filestorages.FileStorage
	delimiter   string
}

func NewRateLogReader(fileStorage filestorages.FileStorage, delimiter string) RateLogReader {
	if delimiter == "" {
		delimiter = ","
	}
	return &rateLogReader{fileStorage: fileStorage, delimiter: delimiter}
}

func (r *rateLogReader) Read(ctx context.Context, key string) (*models.RateLog, error) {
	logger := loggers.Ctx(ctx)

	rc, err := r.fileStorage.Get(ctx, key)
	if err != nil {
		return nil, errLogOpenFailed(key, err)
	}
	defer rc.Close()

	var records []models.RawRateRecord
	scanner := bufio.NewScanner(rc)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		// Only the line ending is cut here; fields are trimmed in parseLine.
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			metricLinesSkippedTotal.WithLabelValues(logKindRate, "blank").Inc()
			continue
		}
		record, err := r.parseLine(key, lineNo, line)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, errLogReadFailed(key, err)
	}
	metricLinesReadTotal.WithLabelValues(logKindRate).Add(float64(lineNo))

	if len(records) == 0 {
		return nil, errRateLogEmpty(key)
	}

	rateLog := models.NewRateLog(records).DropIncompleteSecond()
	dropped := len(records) - len(rateLog.Records)
	metricLinesSkippedTotal.WithLabelValues(logKindRate, "trailing_second").Add(float64(dropped))

	logger.Debug().
		Str(loggers.FieldLogKind, logKindRate).
		Str(loggers.FieldFileKey, key).
		Int(loggers.FieldLineCount, lineNo).
		Int(loggers.FieldSkipped, dropped).
		Msg("rate log read")

	return rateLog, nil
}

func (r *rateLogReader) parseLine(key string, lineNo int, line string) (models.RawRateRecord, error) {
	fields := strings.Split(line, r.delimiter)
	if len(fields) < minRateFields {
		return models.RawRateRecord{}, errRateLineMalformed(key, lineNo,
			fmt.Sprintf("expected at least %d fields, got %d", minRateFields, len(fields)), nil)
	}

	absoluteSecond, err := cast.ToInt64E(strings.TrimSpace(fields[fieldAbsoluteSecond]))
	if err != nil {
		return models.RawRateRecord{}, errRateLineMalformed(key, lineNo, "invalid timestamp", err)
	}
	bytesOutRate, err := cast.ToFloat64E(strings.TrimSpace(fields[fieldBytesOutRate]))
	if err != nil {
		return models.RawRateRecord{}, errRateLineMalformed(key, lineNo, "invalid bytes-out rate", err)
	}
	cumulativeBytesOut, err := cast.ToFloat64E(strings.TrimSpace(fields[fieldCumulativeBytesOut]))
	if err != nil {
		return models.RawRateRecord{}, errRateLineMalformed(key, lineNo, "invalid bytes-out total", err)
	}

	return models.RawRateRecord{
		AbsoluteSecond:     absoluteSecond,
		InterfaceName:      strings.TrimSpace(fields[fieldInterfaceName]),
		BytesOutRate:       bytesOutRate,
		CumulativeBytesOut: cumulativeBytesOut,
	}, nil
}
