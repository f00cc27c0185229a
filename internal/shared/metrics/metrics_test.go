package metrics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTextfile_ContainsRegisteredCounter(t *testing.T) {
	counter := NewCounterVec(
		CounterOpts{
			Namespace: Namespace,
			Subsystem: "test",
			Name:      "textfile_probe_total",
		},
		[]string{FieldLogKind},
	)
	counter.WithLabelValues("rate").Add(3)

	path := filepath.Join(t.TempDir(), "experiment.prom")
	require.NoError(t, WriteTextfile(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `experiment_analytics_test_textfile_probe_total{log_kind="rate"} 3`)
}
