package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ExchangeMetrics counts outbound calls to the exchange-rate provider.
type ExchangeMetrics struct {
	ProviderRequestsTotal   *prometheus.CounterVec
	ProviderRequestDuration *prometheus.HistogramVec
}

func NewExchangeMetrics() *ExchangeMetrics {
	return &ExchangeMetrics{
		ProviderRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "exchangerate_provider_requests_total",
				Help: "Total requests to the exchange-rate provider by endpoint and outcome",
			},
			[]string{"endpoint", "outcome"},
		),
		ProviderRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "exchangerate_provider_request_duration_seconds",
				Help:    "Duration of requests to the exchange-rate provider",
				Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
			},
			[]string{"endpoint"},
		),
	}
}

// RecordProviderRequest records one provider round trip.
func (m *ExchangeMetrics) RecordProviderRequest(endpoint string, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.ProviderRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
	m.ProviderRequestDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}
