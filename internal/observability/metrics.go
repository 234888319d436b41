package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Skip reasons for the region_skips_total counter. Missing, non-USA, and
// unknown-code locations are all silently not counted; the metric labels
// keep them distinguishable in telemetry.
const (
	SkipReasonMissing     = "missing"
	SkipReasonNonUSA      = "non_usa"
	SkipReasonUnknownCode = "unknown_code"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the scan.
type Metrics struct {
	PostsScanned         prometheus.Counter
	PostsInRange         prometheus.Counter
	PositiveVerdicts     prometheus.Counter
	DuplicatesSuppressed prometheus.Counter
	RegionIncrements     prometheus.Counter
	RegionSkips          *prometheus.CounterVec // label: reason={missing,non_usa,unknown_code}
	TaggerErrors         prometheus.Counter

	ScanDuration prometheus.Histogram
	ScanRunning  prometheus.Gauge
	Progress     prometheus.Gauge
}

// NewMetrics creates and registers all scan metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.PostsScanned,
		m.PostsInRange,
		m.PositiveVerdicts,
		m.DuplicatesSuppressed,
		m.RegionIncrements,
		m.RegionSkips,
		m.TaggerErrors,
		m.ScanDuration,
		m.ScanRunning,
		m.Progress,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		PostsScanned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "slf_mapper",
			Name:      "posts_scanned_total",
			Help:      "Total spreadsheet rows visited by the scan.",
		}),
		PostsInRange: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "slf_mapper",
			Name:      "posts_in_range_total",
			Help:      "Posts whose year fell inside the requested window.",
		}),
		PositiveVerdicts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "slf_mapper",
			Name:      "positive_verdicts_total",
			Help:      "Posts classified as spread/sighting reports.",
		}),
		DuplicatesSuppressed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "slf_mapper",
			Name:      "duplicates_suppressed_total",
			Help:      "Posts excluded because their normalized text was inside the dedup window.",
		}),
		RegionIncrements: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "slf_mapper",
			Name:      "region_increments_total",
			Help:      "Positive posts counted against a known region.",
		}),
		RegionSkips: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "slf_mapper",
			Name:      "region_skips_total",
			Help:      "Positive posts not counted, by location anomaly reason.",
		}, []string{"reason"}),
		TaggerErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "slf_mapper",
			Name:      "tagger_errors_total",
			Help:      "Per-post NLP failures recovered by skipping classification.",
		}),
		ScanDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "slf_mapper",
			Name:      "scan_duration_seconds",
			Help:      "Duration of the complete post scan.",
			Buckets:   []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120, 300},
		}),
		ScanRunning: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "slf_mapper",
			Name:      "scan_running",
			Help:      "1 while the scan is active, 0 otherwise.",
		}),
		Progress: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "slf_mapper",
			Name:      "scan_progress_percent",
			Help:      "Integer percentage of in-range posts processed so far.",
		}),
	}
}
