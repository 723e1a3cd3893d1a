package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	predictions *prometheus.CounterVec
	attempts    *prometheus.HistogramVec
	errorsTotal *prometheus.CounterVec
	latency     *prometheus.HistogramVec
	cacheTotal  *prometheus.CounterVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		predictions: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lottopick_predictions_total",
				Help: "Total number of combinations generated",
			},
			[]string{"policy", "window"},
		),
		attempts: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lottopick_generation_attempts",
				Help:    "Rejection sampling attempts per accepted combination",
				Buckets: []float64{1, 2, 5, 10, 25, 50, 100, 250, 500, 1000, 5000, 10000},
			},
			[]string{"policy"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lottopick_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lottopick_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		cacheTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lottopick_cache_requests_total",
				Help: "Pool cache lookups by result",
			},
			[]string{"result"},
		),
	}
}

// RecordPrediction records one generated combination.
func (r *Recorder) RecordPrediction(policy string, window int) {
	r.predictions.WithLabelValues(policy, strconv.Itoa(window)).Inc()
}

// RecordAttempts records how many sampling attempts a generation took.
func (r *Recorder) RecordAttempts(policy string, attempts int) {
	r.attempts.WithLabelValues(policy).Observe(float64(attempts))
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}

// RecordCache records a pool cache lookup result.
func (r *Recorder) RecordCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	r.cacheTotal.WithLabelValues(result).Inc()
}
