package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"adspend/internal/core/domain"
)

// Metrics holds the Prometheus collectors for expenditure computation.
type Metrics struct {
	records     *prometheus.CounterVec
	expenditure *prometheus.CounterVec
	failures    *prometheus.CounterVec
	batch       prometheus.Histogram
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		records: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "adspend",
			Name:      "records_priced_total",
			Help:      "Ad records priced, by platform and ad type.",
		}, []string{"platform", "ad_type"}),
		expenditure: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "adspend",
			Name:      "expenditure_total",
			Help:      "Sum of computed expenditure, by platform.",
		}, []string{"platform"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "adspend",
			Name:      "compute_failures_total",
			Help:      "Failed batch computations, by cause.",
		}, []string{"reason"}),
		batch: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "adspend",
			Name:      "batch_duration_seconds",
			Help:      "Time spent pricing one batch.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
	}
	reg.MustRegister(m.records, m.expenditure, m.failures, m.batch)
	return m
}

// ObserveBatch records a successful batch.
func (m *Metrics) ObserveBatch(results []domain.ExpenditureResult, took time.Duration) {
	m.batch.Observe(took.Seconds())
	for _, r := range results {
		m.records.WithLabelValues(string(r.Platform), string(r.AdType)).Inc()
		m.expenditure.WithLabelValues(string(r.Platform)).Add(r.Expenditure.InexactFloat64())
	}
}

// ObserveFailure records a failed batch labelled by the error kind.
func (m *Metrics) ObserveFailure(err error) {
	m.failures.WithLabelValues(Reason(err)).Inc()
}

// Reason maps a computation error to a short label.
func Reason(err error) string {
	var (
		platformErr *domain.UnsupportedPlatformError
		adTypeErr   *domain.UnsupportedAdTypeError
		rateErr     *domain.RateNotFoundError
		impErr      *domain.InvalidImpressionsError
	)
	switch {
	case errors.As(err, &platformErr):
		return "unsupported_platform"
	case errors.As(err, &adTypeErr):
		return "unsupported_ad_type"
	case errors.As(err, &rateErr):
		return "rate_not_found"
	case errors.As(err, &impErr):
		return "invalid_impressions"
	default:
		return "other"
	}
}
