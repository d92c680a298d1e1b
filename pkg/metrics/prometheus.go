package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	cacheLookups   *prometheus.CounterVec
	upstreamCalls  *prometheus.CounterVec
	upstreamTiming *prometheus.HistogramVec
	errorsTotal    *prometheus.CounterVec
	rows           *prometheus.HistogramVec
}

// New creates a Recorder registered with reg. A nil reg uses the default registerer.
func New(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Recorder{
		cacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quoteframe_cache_lookups_total",
				Help: "Cache lookups by cache and result",
			},
			[]string{"cache", "result"},
		),
		upstreamCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quoteframe_upstream_requests_total",
				Help: "Quote provider calls by provider and result",
			},
			[]string{"provider", "result"},
		),
		upstreamTiming: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "quoteframe_upstream_duration_seconds",
				Help:    "Quote provider call duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"provider"},
		),
		errorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quoteframe_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		rows: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "quoteframe_result_rows",
				Help:    "Rows returned per operation",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
			[]string{"operation"},
		),
	}
}

// RecordCacheLookup counts a cache hit or miss.
func (r *Recorder) RecordCacheLookup(cache string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	r.cacheLookups.WithLabelValues(cache, result).Inc()
}

// RecordUpstreamFetch records one provider call.
func (r *Recorder) RecordUpstreamFetch(provider string, seconds float64, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.upstreamCalls.WithLabelValues(provider, result).Inc()
	r.upstreamTiming.WithLabelValues(provider).Observe(seconds)
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordRows records the height of a returned table or quote list.
func (r *Recorder) RecordRows(op string, rows int) {
	r.rows.WithLabelValues(op).Observe(float64(rows))
}
