package app

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"service-checkout-delivery/internal/config"
	"service-checkout-delivery/internal/logx"
	"service-checkout-delivery/internal/transport/kafka"
)

var errNoConsumer = errors.New("kafka consumer is nil: worker container misconfigured")

// WorkerRunner runs the checkout lifecycle consumer.
type WorkerRunner struct {
	runFn func(*dig.Container) error
}

// NewWorkerRunner returns a new WorkerRunner
func NewWorkerRunner() *WorkerRunner {
	return &WorkerRunner{runFn: runWorker}
}

// MustRun consumes until the container context is done. Any other error panics.
func (r *WorkerRunner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil {
		return
	}
	logger := containerLogger(container)
	if errors.Is(err, context.Canceled) {
		logger.Info("worker stopped")
		return
	}
	logger.Error("worker run error", logx.Err(err))
	panic(err)
}

type workerIn struct {
	dig.In

	Ctx      context.Context
	Cfg      *config.Config
	Logger   logx.Logger
	Pool     *pgxpool.Pool
	Consumer *kafka.Consumer `optional:"true"`
}

func runWorker(container *dig.Container) error {
	return container.Invoke(func(in workerIn) error {
		in.Logger.Info("checkout events worker starting",
			logx.String("topic", in.Cfg.Kafka.CheckoutTopic),
			logx.String("group", in.Cfg.Kafka.GroupID),
		)
		return workerRun(in.Ctx, in.Pool, in.Logger, in.Consumer)
	})
}

// workerRun blocks on the consumer and releases the pool and group on return.
func workerRun(
	ctx context.Context,
	pool *pgxpool.Pool,
	logger logx.Logger,
	consumer *kafka.Consumer,
) error {
	if consumer == nil {
		// без брокеров консьюмер не создается
		if pool != nil {
			pool.Close()
		}
		return errNoConsumer
	}
	defer closeWorker(pool, logger, consumer)
	return consumer.Run(ctx)
}

func closeWorker(pool *pgxpool.Pool, logger logx.Logger, consumer *kafka.Consumer) {
	if err := consumer.Close(); err != nil {
		logger.Error("kafka close error", logx.Err(err))
	}
	if pool != nil {
		pool.Close()
	}
}
