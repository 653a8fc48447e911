package checkoutevents

import (
	"context"
	"time"

	"service-checkout-delivery/internal/logx"
)

// Processor applies checkout lifecycle events to the delivery cache.
type Processor struct {
	store   DeliveryStore
	logger  logx.Logger
	factory *actionFactory
	now     func() time.Time
}

// NewProcessor creates a new checkoutevents.Processor
func NewProcessor(store DeliveryStore, logger logx.Logger) *Processor {
	p := &Processor{
		store:  store,
		logger: logger.With(logx.Component("checkout_events")),
		now:    func() time.Time { return time.Now().UTC() },
	}
	p.factory = newActionFactory(p.onInputsChanged, p.onFinished)
	return p
}

// Handle processes a single checkout event; unknown types are skipped.
func (p *Processor) Handle(ctx context.Context, e Event) error {
	fn, ok := p.factory.get(e.Type)
	if !ok {
		p.logger.Debug("checkout event skipped",
			logx.String("event_id", e.EventID),
			logx.String("type", e.Type),
		)
		return nil
	}
	return fn(ctx, e)
}

// onInputsChanged forces the next read to refresh.
func (p *Processor) onInputsChanged(ctx context.Context, e Event) error {
	at := e.OccurredAt
	if at.IsZero() {
		at = p.now()
	}
	marked, err := p.store.MarkDeliveryStale(ctx, e.CheckoutID, at)
	if err != nil {
		return err
	}
	p.logger.Info("delivery options marked stale",
		logx.String("checkout_id", e.CheckoutID),
		logx.String("type", e.Type),
		logx.Bool("changed", marked),
	)
	return nil
}

// onFinished drops the cached options of a checkout that will not be read again.
func (p *Processor) onFinished(ctx context.Context, e Event) error {
	n, err := p.store.DeleteDeliveryOptions(ctx, e.CheckoutID)
	if err != nil {
		return err
	}
	p.logger.Info("delivery options dropped",
		logx.String("checkout_id", e.CheckoutID),
		logx.String("type", e.Type),
		logx.Int64("rows", n),
	)
	return nil
}
