package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	FlightLookups          prometheus.Counter
	TokenRefreshes         prometheus.Counter
	RecommendationsServed  prometheus.Counter
	LayoverPlansServed     prometheus.Counter
	ProviderErrors         *prometheus.CounterVec
	FlightLookupDuration   prometheus.Histogram
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		FlightLookups: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flight_lookups_total",
			Help:      "The total number of flight status lookups",
		}),
		TokenRefreshes: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "token_refreshes_total",
			Help:      "The total number of provider token refreshes",
		}),
		RecommendationsServed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recommendations_served_total",
			Help:      "The total number of lounge recommendation responses",
		}),
		LayoverPlansServed: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "layover_plans_served_total",
			Help:      "The total number of layover strategy responses",
		}),
		ProviderErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_errors_total",
			Help:      "The total number of downstream provider errors",
		}, []string{"operation"}),
		FlightLookupDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "flight_lookup_duration_seconds",
			Help:      "Time taken to resolve flight status from the provider",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// Nil-receiver guards let components run without metrics in tests.

// IncFlightLookups counts one flight status lookup
func (m *Metrics) IncFlightLookups() {
	if m == nil {
		return
	}
	m.FlightLookups.Inc()
}

// IncTokenRefreshes counts one token refresh
func (m *Metrics) IncTokenRefreshes() {
	if m == nil {
		return
	}
	m.TokenRefreshes.Inc()
}

// IncRecommendationsServed counts one recommendation response
func (m *Metrics) IncRecommendationsServed() {
	if m == nil {
		return
	}
	m.RecommendationsServed.Inc()
}

// IncLayoverPlansServed counts one layover plan response
func (m *Metrics) IncLayoverPlansServed() {
	if m == nil {
		return
	}
	m.LayoverPlansServed.Inc()
}

// IncProviderErrors counts one provider error for an operation
func (m *Metrics) IncProviderErrors(operation string) {
	if m == nil {
		return
	}
	m.ProviderErrors.WithLabelValues(operation).Inc()
}

// ObserveFlightLookup records a lookup duration
func (m *Metrics) ObserveFlightLookup(d time.Duration) {
	if m == nil {
		return
	}
	m.FlightLookupDuration.Observe(d.Seconds())
}
