package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registry *prometheus.Registry

	// Runs by outcome. Watch for: non-success results in fixture suites.
	RunsTotal *prometheus.CounterVec

	// Elements computed from earlier ones (seeds excluded).
	IndexesComputedTotal prometheus.Counter

	// Time spent filling the sequence buffer, per run.
	GenerateDuration prometheus.Histogram

	// Requested length of the most recent sequence.
	SequenceLength prometheus.Gauge
)

func init() {
	registry = prometheus.NewRegistry()

	RunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fibseqRunsTotal",
			Help: "Total number of fixture runs by result",
		},
		[]string{"result"},
	)
	IndexesComputedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fibseqIndexesComputedTotal",
			Help: "Total number of sequence elements computed from the two preceding elements",
		},
	)
	GenerateDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fibseqGenerateDurationSeconds",
			Help:    "Sequence generation time in seconds (per run)",
			Buckets: []float64{.00001, .0001, .001, .01, .1, 1},
		},
	)
	SequenceLength = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "fibseqSequenceLength",
			Help: "Number of elements requested by the most recent run",
		},
	)

	registry.MustRegister(RunsTotal, IndexesComputedTotal, GenerateDuration, SequenceLength)
}

// RecordRun counts a finished run under the given result label.
func RecordRun(result string) {
	RunsTotal.WithLabelValues(result).Inc()
}

// RecordGeneration records one buffer fill of length n with computed non-seed elements.
func RecordGeneration(n, computed int, d time.Duration) {
	SequenceLength.Set(float64(n))
	IndexesComputedTotal.Add(float64(computed))
	GenerateDuration.Observe(d.Seconds())
}

// WriteMetricsTextfile writes all metrics to path in the Prometheus text format,
// replacing the file atomically, for pickup by a textfile collector.
func WriteMetricsTextfile(path string) error {
	return prometheus.WriteToTextfile(path, registry)
}
