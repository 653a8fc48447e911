package app

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"service-checkout-delivery/internal/metrics"
)

type metricsOut struct {
	dig.Out

	RateLimitExceededTotal prometheus.Counter     `name:"rate_limit_exceeded_total"`
	GatewayRetriesTotal    prometheus.Counter     `name:"gateway_retries_total"`
	ProviderFailures       metrics.LabeledCounter `name:"provider_failures"`
	RefreshOutcomes        metrics.LabeledCounter `name:"refresh_outcomes"`
}

// provideMetrics registers collectors on the default registerer. Collectors
// registered earlier (a second container in the same process) are reused.
func provideMetrics() (metricsOut, error) {
	rl, err := register("rate_limit_exceeded_total", metrics.NewRateLimitExceededTotal())
	if err != nil {
		return metricsOut{}, err
	}
	gr, err := register("gateway_retries_total", metrics.NewGatewayRetriesTotal())
	if err != nil {
		return metricsOut{}, err
	}
	pf, err := register("delivery_provider_failures_total", metrics.NewProviderFailuresTotal())
	if err != nil {
		return metricsOut{}, err
	}
	ro, err := register("delivery_options_requests_total", metrics.NewDeliveryRefreshTotal())
	if err != nil {
		return metricsOut{}, err
	}
	return metricsOut{
		RateLimitExceededTotal: rl,
		GatewayRetriesTotal:    gr,
		ProviderFailures:       metrics.NewLabeledCounter(pf),
		RefreshOutcomes:        metrics.NewLabeledCounter(ro),
	}, nil
}

func register[C prometheus.Collector](name string, c C) (C, error) {
	err := prometheus.DefaultRegisterer.Register(c)
	if err == nil {
		return c, nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing, nil
		}
	}
	var zero C
	return zero, fmt.Errorf("register %s: %w", name, err)
}
