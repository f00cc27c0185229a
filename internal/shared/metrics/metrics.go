package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	FieldErrorCode = "error_code"
	FieldLogKind   = "log_kind"

	ValueNoError = ""

	Namespace      = "experiment_analytics"
	SubReader      = "reader"
	SubAggregation = "aggregation"
	SubAnalysis    = "analysis"
	SubRender      = "render"
	SubRun         = "run"
)

// CounterOpts is a type alias for prometheus.CounterOpts.
type CounterOpts = prometheus.CounterOpts

// HistogramOpts is a type alias for prometheus.HistogramOpts.
type HistogramOpts = prometheus.HistogramOpts

// DefBuckets is a re-export of prometheus.DefBuckets.
var DefBuckets = prometheus.DefBuckets

// Registry collects every metric of a run. A one-shot run has no scrape
// endpoint, so the registry is written out with WriteTextfile instead.
var Registry = prometheus.NewRegistry()

// NewCounterVec creates a new CounterVec registered with Registry.
var NewCounterVec = promauto.With(Registry).NewCounterVec

// NewHistogramVec creates a new HistogramVec registered with Registry.
var NewHistogramVec = promauto.With(Registry).NewHistogramVec

// WriteTextfile writes the current state of Registry in the text exposition
// format, suitable for the node_exporter textfile collector. The file is
// written to a temporary name and renamed into place.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, Registry)
}
