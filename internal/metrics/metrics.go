package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	RequestCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "updown_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"path", "method", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "updown_http_request_duration_seconds",
			Help:    "Histogram of response durations",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)

	// ProbeTotal counts finished probes by outcome ("up", "http_error" or a failure sentinel name).
	ProbeTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "updown_probe_total",
			Help: "Number of site probes by outcome",
		},
		[]string{"outcome"},
	)

	ProbeDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "updown_probe_duration_seconds",
			Help:    "Duration of site probes",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"outcome"},
	)

	// ProbeSkipped counts ticks dropped because the previous probe of the same site was still running.
	ProbeSkipped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "updown_probe_skipped_total",
			Help: "Ticks skipped while a probe for the same site was in flight",
		},
	)

	ScheduledSites = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "updown_scheduled_sites",
			Help: "Number of sites with an active probe timer",
		},
	)

	LiveConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "updown_live_connections",
			Help: "Number of open dashboard event streams",
		},
	)

	Transitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "updown_transitions_total",
			Help: "Status ledger writes by transition kind",
		},
		[]string{"kind"},
	)

	// ExportsDropped counts transitions discarded because the export queue was full.
	ExportsDropped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "updown_exports_dropped_total",
			Help: "Status transitions dropped before reaching the exporter",
		},
	)
)

var initOnce sync.Once

// Init registers all collectors with the default registry. Safe to call more than once.
func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(
			RequestCount, RequestDuration,
			ProbeTotal, ProbeDuration, ProbeSkipped,
			ScheduledSites, LiveConnections, Transitions,
			ExportsDropped,
		)
	})
}
