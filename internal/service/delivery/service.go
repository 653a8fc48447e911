package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"service-checkout-delivery/internal/apperr"
	"service-checkout-delivery/internal/domain"
	"service-checkout-delivery/internal/logx"
	"service-checkout-delivery/internal/ports/deliverytx"
)

// Refresh outcomes reported to the outcome counter.
const (
	OutcomeFresh      = "fresh"
	OutcomeRefreshed  = "refreshed"
	OutcomeSuperseded = "superseded"
	OutcomeFailed     = "failed"
)

const (
	defaultOptionsTTL = 20 * time.Minute
	// refreshTimeout bounds a shared refresh, which outlives the request that started it.
	refreshTimeout = 30 * time.Second
)

// Deps are the collaborators of Service.
type Deps struct {
	Reader    checkoutReader
	Runner    deliverytx.Runner
	Internal  internalLookup
	External  externalGateway
	Subtotals subtotalCalculator
	Prices    priceInvalidator
	Points    collectionPoints
	Outcomes  labeledCounter
}

// Service caches and refreshes the delivery options of checkouts.
type Service struct {
	deps   Deps
	ttl    time.Duration
	logger logx.Logger
	now    func() time.Time
	flight singleflight.Group
}

// NewService creates a Service. A non-positive ttl falls back to 20 minutes.
func NewService(deps Deps, ttl time.Duration, logger logx.Logger) *Service {
	if ttl <= 0 {
		ttl = defaultOptionsTTL
	}
	return &Service{
		deps:   deps,
		ttl:    ttl,
		logger: logger.With(logx.Component("delivery_cache")),
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// GetOrRefreshDeliveryOptions returns the cached set, refreshing it first when stale.
// A failed refresh leaves the stored set untouched.
func (s *Service) GetOrRefreshDeliveryOptions(ctx context.Context, checkoutID string) (domain.CachedDeliverySet, error) {
	c, err := s.deps.Reader.GetCheckout(ctx, checkoutID)
	if err != nil {
		return domain.CachedDeliverySet{}, err
	}
	if c == nil {
		return domain.CachedDeliverySet{}, apperr.ErrNotFound
	}

	if !s.now().Before(c.DeliveryMethodsStaleAt) {
		pre := *c
		ch := s.flight.DoChan(checkoutID, func() (any, error) {
			// waiters share this call, so one caller going away must not cancel it
			rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), refreshTimeout)
			defer cancel()
			return s.refresh(rctx, pre)
		})
		select {
		case <-ctx.Done():
			return domain.CachedDeliverySet{}, ctx.Err()
		case res := <-ch:
			if res.Err != nil {
				s.observe(OutcomeFailed)
				return domain.CachedDeliverySet{}, res.Err
			}
			return res.Val.(domain.CachedDeliverySet), nil
		}
	}

	stored, err := s.deps.Reader.ListDeliveryOptions(ctx, checkoutID)
	if err != nil {
		return domain.CachedDeliverySet{}, err
	}
	s.observe(OutcomeFresh)
	return cachedSet(*c, stored), nil
}

// ListCollectionPoints returns the click-and-collect warehouses of the checkout's channel.
func (s *Service) ListCollectionPoints(ctx context.Context, checkoutID string) ([]domain.CollectionPoint, error) {
	c, err := s.deps.Reader.GetCheckout(ctx, checkoutID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.ErrNotFound
	}
	lines, err := s.deps.Reader.ListLines(ctx, checkoutID)
	if err != nil {
		return nil, err
	}
	if !domain.ShippingRequired(lines) {
		return nil, nil
	}
	return s.deps.Points.ListCollectionPoints(ctx, c.ChannelID)
}

func (s *Service) refresh(ctx context.Context, pre domain.Checkout) (domain.CachedDeliverySet, error) {
	lines, err := s.deps.Reader.ListLines(ctx, pre.ID)
	if err != nil {
		return domain.CachedDeliverySet{}, err
	}
	subtotal, err := s.deps.Subtotals.ShippingLookupSubtotal(ctx, pre, lines)
	if err != nil {
		return domain.CachedDeliverySet{}, err
	}

	var (
		internal []domain.DeliveryOption
		external []domain.DeliveryOption
		eg       errgroup.Group
	)
	eg.Go(func() error {
		opts, err := s.deps.Internal.FindInternalOptions(ctx, pre, lines, subtotal)
		if err != nil {
			return fmt.Errorf("internal lookup: %w", err)
		}
		internal = opts
		return nil
	})
	eg.Go(func() error {
		external = s.deps.External.FindExternalOptions(ctx, pre, lines)
		return nil
	})
	if err := eg.Wait(); err != nil {
		return domain.CachedDeliverySet{}, err
	}

	all := make([]domain.DeliveryOption, 0, len(internal)+len(external))
	all = append(all, internal...)
	all = append(all, external...)
	all = s.deps.External.ApplyExclusions(ctx, pre, all)

	var (
		set    domain.CachedDeliverySet
		result ReconcileResult
	)
	err = s.deps.Runner.WithTx(ctx, func(tx deliverytx.Repository) error {
		locked, err := tx.LockCheckoutForUpdate(ctx, pre.ID)
		if err != nil {
			return err
		}
		if !locked.Stamp().Equal(pre.Stamp()) {
			return apperr.ErrSuperseded
		}
		stored, err := tx.ListDeliveryOptions(ctx, pre.ID)
		if err != nil {
			return persistenceErr("list delivery options", err)
		}

		internalOpts, externalOpts := splitBySource(all)
		result = Reconcile(*locked, stored, internalOpts, externalOpts)
		keep := result.Persisted()
		if err := tx.DeleteDeliveryOptionsExcept(ctx, pre.ID, keep); err != nil {
			return persistenceErr("delete delivery options", err)
		}
		if err := tx.UpsertDeliveryOptions(ctx, pre.ID, keep); err != nil {
			return persistenceErr("upsert delivery options", err)
		}

		updated := locked.Clone()
		updated.DeliveryMethodsStaleAt = s.now().Add(s.ttl)
		fields := []string{domain.FieldDeliveryMethodsStaleAt}
		if updated.AssignedDeliveryValid != result.AssignedIsValid {
			updated.AssignedDeliveryValid = result.AssignedIsValid
			fields = append(fields, domain.FieldAssignedDeliveryValid)
		}
		if result.PriceImpacted {
			if result.Retained == nil && result.Assigned != nil {
				updated.BaseShippingPrice = result.Assigned.Price
				updated.ShippingMethodName = result.Assigned.Name
				fields = append(fields, domain.FieldBaseShippingPrice, domain.FieldShippingMethodName)
			}
			invalidated, err := s.deps.Prices.InvalidateCheckoutPrices(ctx, &updated, lines, true)
			if err != nil {
				return fmt.Errorf("invalidate prices: %w", err)
			}
			fields = append(fields, invalidated...)
		}
		if err := tx.UpdateCheckoutFields(ctx, &updated, fields); err != nil {
			return persistenceErr("update checkout", err)
		}
		set = result.set(updated)
		return nil
	})

	if errors.Is(err, apperr.ErrSuperseded) {
		s.logger.Info("delivery refresh superseded", logx.String("checkout_id", pre.ID))
		s.observe(OutcomeSuperseded)
		return s.current(ctx, pre.ID)
	}
	if err != nil {
		return domain.CachedDeliverySet{}, err
	}

	s.observe(OutcomeRefreshed)
	s.logger.Info("delivery options refreshed",
		logx.String("checkout_id", pre.ID),
		logx.Int("internal", len(internal)),
		logx.Int("external", len(external)),
		logx.String("assigned_id", result.AssignedOptionID),
		logx.Bool("assigned_valid", result.AssignedIsValid),
		logx.Bool("price_impacted", result.PriceImpacted),
	)
	return set, nil
}

// current reads the stored set written by whoever superseded this refresh.
func (s *Service) current(ctx context.Context, checkoutID string) (domain.CachedDeliverySet, error) {
	c, err := s.deps.Reader.GetCheckout(ctx, checkoutID)
	if err != nil {
		return domain.CachedDeliverySet{}, err
	}
	if c == nil {
		return domain.CachedDeliverySet{}, apperr.ErrNotFound
	}
	stored, err := s.deps.Reader.ListDeliveryOptions(ctx, checkoutID)
	if err != nil {
		return domain.CachedDeliverySet{}, err
	}
	return cachedSet(*c, stored), nil
}

func splitBySource(all []domain.DeliveryOption) (internal, external []domain.DeliveryOption) {
	for _, o := range all {
		if o.Source == domain.SourceExternal {
			external = append(external, o)
		} else {
			internal = append(internal, o)
		}
	}
	return internal, external
}

func (s *Service) observe(outcome string) {
	if s.deps.Outcomes != nil {
		s.deps.Outcomes.Inc(outcome)
	}
}

func persistenceErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", apperr.ErrPersistence, op, err)
}
