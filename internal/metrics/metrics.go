package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewGatewayRetriesTotal returns a Prometheus counter for the number of retry attempts performed by gateways
func NewGatewayRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gateway_retries_total",
		Help: "Total number of retry attempts performed by gateways",
	})
}

// NewProviderFailuresTotal returns a counter of delivery provider calls that contributed nothing
func NewProviderFailuresTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "delivery_provider_failures_total",
		Help: "Total number of delivery provider calls that failed or timed out",
	}, []string{"provider"})
}

// NewDeliveryRefreshTotal returns a counter of delivery option reads by outcome
func NewDeliveryRefreshTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "delivery_options_requests_total",
		Help: "Total number of delivery option reads by outcome (fresh, refreshed, superseded, failed)",
	}, []string{"outcome"})
}

// LabeledCounter increments a single-label counter vector.
type LabeledCounter struct {
	vec *prometheus.CounterVec
}

// NewLabeledCounter wraps vec, which must have exactly one label.
func NewLabeledCounter(vec *prometheus.CounterVec) LabeledCounter {
	return LabeledCounter{vec: vec}
}

// Inc increments the series for label.
func (c LabeledCounter) Inc(label string) {
	if c.vec == nil {
		return
	}
	c.vec.WithLabelValues(label).Inc()
}
