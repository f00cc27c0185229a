package readers

import (
	"bufio"
	"context"
	"strings"

	"experiment-analytics/internal/shared/filestorages"
	"experiment-analytics/internal/shared/loggers"
)

const (
	replySuffix   = " ms"
	summaryPrefix = "rtt"
)

//go:generate mockgen -source=ping_log_reader.go -destination=./mocks/ping_log_reader_mock.go -package=mocks
type PingLogReader interface {
	// ReadReplyLines returns the timed reply lines of the ping log stored at key,
	// in file order. Header and summary lines are left out.
	ReadReplyLines(ctx context.Context, key string) ([]string, error)
}

type pingLogReader struct {
	fileStorage filestorages.FileStorage
}

func NewPingLogReader(fileStorage filestorages.FileStorage) PingLogReader {
	return &pingLogReader{fileStorage: fileStorage}
}

func (r *pingLogReader) ReadReplyLines(ctx context.Context, key string) ([]string, error) {
	rc, err := r.fileStorage.Get(ctx, key)
	if err != nil {
		return nil, errLogOpenFailed(key, err)
	}
	defer rc.Close()

	var lines []string
	scanner := bufio.NewScanner(rc)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line := strings.TrimRight(scanner.Text(), "\r")
		if !IsReplyLine(line) {
			metricLinesSkippedTotal.WithLabelValues(logKindPing, "not_reply").Inc()
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errLogReadFailed(key, err)
	}
	metricLinesReadTotal.WithLabelValues(logKindPing).Add(float64(lineNo))

	loggers.Ctx(ctx).Debug().
		Str(loggers.FieldLogKind, logKindPing).
		Str(loggers.FieldFileKey, key).
		Int(loggers.FieldLineCount, lineNo).
		Int(loggers.FieldSkipped, lineNo-len(lines)).
		Msg("ping log read")

	return lines, nil
}

// IsReplyLine reports whether line is a timed reply: it ends in " ms" and is
// not the closing "rtt min/avg/max/mdev" summary.
func IsReplyLine(line string) bool {
	return strings.HasSuffix(line, replySuffix) && !strings.HasPrefix(line, summaryPrefix)
}
