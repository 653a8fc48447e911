package providers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"service-checkout-delivery/internal/apperr"
	"service-checkout-delivery/internal/domain"
	"service-checkout-delivery/internal/logx"
)

type failureCounter interface {
	Inc(provider string)
}

// Gateway fans a checkout out to every configured provider and normalizes the answers.
// Providers are independent failure domains: a failing provider contributes nothing.
type Gateway struct {
	providers []Provider
	policy    ExclusionPolicy
	timeout   time.Duration
	logger    logx.Logger
	failures  failureCounter
}

// NewGateway creates a Gateway. A nil policy excludes nothing.
func NewGateway(
	providers []Provider,
	policy ExclusionPolicy,
	timeout time.Duration,
	logger logx.Logger,
	failures failureCounter,
) *Gateway {
	if policy == nil {
		policy = NopPolicy{}
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Gateway{
		providers: providers,
		policy:    policy,
		timeout:   timeout,
		logger:    logger.With(logx.Component("provider_gateway")),
		failures:  failures,
	}
}

// FindExternalOptions queries all providers concurrently, each under its own timeout.
func (g *Gateway) FindExternalOptions(ctx context.Context, c domain.Checkout, lines []domain.CheckoutLine) []domain.DeliveryOption {
	if len(g.providers) == 0 {
		return nil
	}

	results := make([][]domain.DeliveryOption, len(g.providers))
	var eg errgroup.Group
	for i, p := range g.providers {
		i, p := i, p
		eg.Go(func() error {
			results[i] = g.fromProvider(ctx, p, c, lines)
			return nil
		})
	}
	_ = eg.Wait()

	var out []domain.DeliveryOption
	for _, r := range results {
		out = append(out, r...)
	}
	return out
}

func (g *Gateway) fromProvider(ctx context.Context, p Provider, c domain.Checkout, lines []domain.CheckoutLine) []domain.DeliveryOption {
	pctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	raw, err := p.ListMethods(pctx, c, lines)
	if err != nil {
		g.providerFailed(p.Name(), c.ID, err)
		return nil
	}
	opts, err := normalize(p.Name(), c.Currency, raw)
	if err != nil {
		g.providerFailed(p.Name(), c.ID, err)
		return nil
	}
	return opts
}

func (g *Gateway) providerFailed(provider, checkoutID string, err error) {
	if g.failures != nil {
		g.failures.Inc(provider)
	}
	g.logger.Warn("delivery provider unavailable",
		logx.String("provider", provider),
		logx.String("checkout_id", checkoutID),
		logx.Bool("timeout", errors.Is(err, context.DeadlineExceeded)),
		logx.Err(fmt.Errorf("%w: %w", apperr.ErrProviderUnavailable, err)),
	)
}

// ApplyExclusions returns a copy of candidates with excluded options marked inactive.
// A failing policy excludes nothing.
func (g *Gateway) ApplyExclusions(ctx context.Context, c domain.Checkout, candidates []domain.DeliveryOption) []domain.DeliveryOption {
	out := make([]domain.DeliveryOption, len(candidates))
	copy(out, candidates)
	if len(out) == 0 {
		return out
	}

	pctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	exclusions, err := g.policy.ExcludedMethods(pctx, c, out)
	if err != nil {
		g.logger.Warn("exclusion policy failed",
			logx.String("checkout_id", c.ID),
			logx.Err(err),
		)
		return out
	}

	reasons := make(map[string]string, len(exclusions))
	for _, e := range exclusions {
		reasons[e.ID] = e.Reason
	}
	for i := range out {
		if reason, ok := reasons[out[i].ID]; ok {
			out[i].Active = false
			out[i].Message = reason
		}
	}
	return out
}

// normalize converts raw methods; any malformed method rejects the whole response.
// Methods priced in another currency are dropped.
func normalize(provider, currency string, raw []RawMethod) ([]domain.DeliveryOption, error) {
	out := make([]domain.DeliveryOption, 0, len(raw))
	for _, m := range raw {
		if m.ID == "" || m.Name == "" {
			return nil, fmt.Errorf("%w: method without id or name", errMalformed)
		}
		amount, err := decimal.NewFromString(m.Amount)
		if err != nil {
			return nil, fmt.Errorf("%w: method %q amount %q", errMalformed, m.ID, m.Amount)
		}
		if amount.IsNegative() {
			return nil, fmt.Errorf("%w: method %q negative amount", errMalformed, m.ID)
		}
		if m.Currency != currency {
			continue
		}
		out = append(out, domain.DeliveryOption{
			ID:              domain.ExternalOptionID(provider, m.ID),
			Source:          domain.SourceExternal,
			Name:            m.Name,
			Description:     m.Description,
			Price:           domain.Money{Amount: amount, Currency: m.Currency},
			MinDeliveryDays: m.MinDays,
			MaxDeliveryDays: m.MaxDays,
			Active:          true,
			Valid:           true,
			Metadata:        m.Metadata,
		})
	}
	return out, nil
}
