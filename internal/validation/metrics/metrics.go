package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the validation module.
type Metrics struct {
	// Validation outcomes by lexical verdict and format
	ValidationsTotal *prometheus.CounterVec

	// Semantic rejections by reason code
	SemanticRejections *prometheus.CounterVec

	// Result cache effectiveness
	CacheHits   prometheus.Counter
	CacheMisses prometheus.Counter

	// Full validation latency including store writes
	ValidateLatency prometheus.Histogram
}

// New creates a new Metrics instance with all validation metrics registered.
func New() *Metrics {
	return &Metrics{
		ValidationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "nicgate_validations_total",
			Help: "Total NIC validations by lexical verdict and format",
		}, []string{"verdict", "format"}), // verdict: "accepted", "rejected"

		SemanticRejections: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "nicgate_semantic_rejections_total",
			Help: "Semantic check rejections by reason code",
		}, []string{"reason"}),

		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "nicgate_result_cache_hits_total",
			Help: "Validation verdicts served from the result cache",
		}),

		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "nicgate_result_cache_misses_total",
			Help: "Validation requests that missed the result cache",
		}),

		ValidateLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "nicgate_validate_duration_seconds",
			Help:    "Duration of a full validation including persistence",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}),
	}
}

// RecordValidation records one validation outcome.
func (m *Metrics) RecordValidation(verdict, format string) {
	if m != nil {
		m.ValidationsTotal.WithLabelValues(verdict, format).Inc()
	}
}

// RecordSemanticRejection records a semantic failure by reason code.
func (m *Metrics) RecordSemanticRejection(reason string) {
	if m != nil {
		m.SemanticRejections.WithLabelValues(reason).Inc()
	}
}

// RecordCacheHit records a result served from cache.
func (m *Metrics) RecordCacheHit() {
	if m != nil {
		m.CacheHits.Inc()
	}
}

// RecordCacheMiss records a cache miss.
func (m *Metrics) RecordCacheMiss() {
	if m != nil {
		m.CacheMisses.Inc()
	}
}

// ObserveValidateLatency records the total validation duration.
func (m *Metrics) ObserveValidateLatency(d time.Duration) {
	if m != nil {
		m.ValidateLatency.Observe(d.Seconds())
	}
}
