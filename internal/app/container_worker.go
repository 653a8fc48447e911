package app

import (
	"context"
	"time"

	"go.uber.org/dig"

	"service-checkout-delivery/internal/config"
	"service-checkout-delivery/internal/logx"
	"service-checkout-delivery/internal/repository"
	"service-checkout-delivery/internal/service/checkoutevents"
	"service-checkout-delivery/internal/transport/kafka"
)

const checkoutEventTimeout = 5 * time.Second

func registerWorker(container *dig.Container) error {
	return provideAll(container,
		repository.NewCheckoutRepo,
		func(repo *repository.CheckoutRepo, logger logx.Logger) *checkoutevents.Processor {
			return checkoutevents.NewProcessor(repo, logger)
		},
		newCheckoutConsumer,
	)
}

func newCheckoutConsumer(cfg *config.Config, logger logx.Logger, p *checkoutevents.Processor) (*kafka.Consumer, error) {
	return kafka.NewConsumer(logger, cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.CheckoutTopic,
		makeCheckoutKafka(p, checkoutEventTimeout))
}

type checkoutEventHandler interface {
	Handle(ctx context.Context, e checkoutevents.Event) error
}

// makeCheckoutKafka bounds each message by timeout so a stuck row lock cannot
// stall the partition.
func makeCheckoutKafka(h checkoutEventHandler, timeout time.Duration) kafka.HandleFunc {
	return func(ctx context.Context, event checkoutevents.Event) error {
		hctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return h.Handle(hctx, event)
	}
}
