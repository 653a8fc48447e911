package app

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"service-checkout-delivery/internal/config"
	"service-checkout-delivery/internal/gateway/providers"
	"service-checkout-delivery/internal/logx"
	"service-checkout-delivery/internal/metrics"
	"service-checkout-delivery/internal/repository"
	"service-checkout-delivery/internal/service/catalog"
	"service-checkout-delivery/internal/service/delivery"
	"service-checkout-delivery/internal/service/pricing"
	"service-checkout-delivery/internal/transport/kafka"
)

func newExclusionPolicy(cfg *config.Config) providers.ExclusionPolicy {
	if cfg.Delivery.ExclusionPolicyURL == "" {
		return providers.NopPolicy{}
	}
	return providers.NewWebhookPolicy(cfg.Delivery.ExclusionPolicyURL, &http.Client{})
}

type gatewayIn struct {
	dig.In

	Config   *config.Config
	Logger   logx.Logger
	Policy   providers.ExclusionPolicy
	Retries  prometheus.Counter     `name:"gateway_retries_total" optional:"true"`
	Failures metrics.LabeledCounter `name:"provider_failures" optional:"true"`
}

// newProviderGateway wraps every configured provider with retries; the gateway
// timeout bounds all attempts of one provider together.
func newProviderGateway(in gatewayIn) *providers.Gateway {
	client := &http.Client{}
	retry := providers.RetryConfig{
		MaxAttempts: in.Config.ProviderRetry.MaxAttempts,
		BaseDelay:   in.Config.ProviderRetry.BaseDelay,
		MaxDelay:    in.Config.ProviderRetry.MaxDelay,
	}
	list := make([]providers.Provider, 0, len(in.Config.Delivery.Providers))
	for _, p := range in.Config.Delivery.Providers {
		next := providers.NewHTTPProvider(p.Name, p.URL, client)
		list = append(list, providers.NewRetryingProvider(next, in.Logger, in.Retries, retry))
	}
	return providers.NewGateway(list, in.Policy, in.Config.Delivery.ProviderTimeout, in.Logger, in.Failures)
}

func newEventPublisher(cfg *config.Config, logger logx.Logger) (*kafka.Publisher, error) {
	return kafka.NewPublisher(logger, cfg.Kafka.Brokers, cfg.Kafka.EventsTopic)
}

type deliveryIn struct {
	dig.In

	Config      *config.Config
	Logger      logx.Logger
	Checkouts   *repository.CheckoutRepo
	Catalog     *repository.CatalogRepo
	Lookup      *catalog.Lookup
	Gateway     *providers.Gateway
	Calculator  pricing.Calculator
	Invalidator *pricing.Invalidator
	Outcomes    metrics.LabeledCounter `name:"refresh_outcomes" optional:"true"`
}

func newDeliveryService(in deliveryIn) *delivery.Service {
	return delivery.NewService(delivery.Deps{
		Reader:    in.Checkouts,
		Runner:    in.Checkouts,
		Internal:  in.Lookup,
		External:  in.Gateway,
		Subtotals: in.Calculator,
		Prices:    in.Invalidator,
		Points:    in.Catalog,
		Outcomes:  in.Outcomes,
	}, in.Config.Delivery.OptionsTTL, in.Logger)
}

func newDeliveryAssigner(
	svc *delivery.Service,
	checkouts *repository.CheckoutRepo,
	points *repository.CatalogRepo,
	prices *pricing.Invalidator,
	events *kafka.Publisher,
	logger logx.Logger,
) *delivery.Assigner {
	return delivery.NewAssigner(svc, checkouts, points, prices, events, logger)
}
