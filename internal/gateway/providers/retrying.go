package providers

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"service-checkout-delivery/internal/domain"
	"service-checkout-delivery/internal/logx"
)

// Provider is a single external delivery provider.
type Provider interface {
	Name() string
	ListMethods(ctx context.Context, c domain.Checkout, lines []domain.CheckoutLine) ([]RawMethod, error)
}

type counter interface {
	Inc()
}

// RetryConfig описывает поведение RetryingProvider
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// RetryingProvider retries transient provider failures with capped exponential backoff.
type RetryingProvider struct {
	next    Provider
	logger  logx.Logger
	retries counter
	cfg     RetryConfig
}

// NewRetryingProvider проверяет, что next не nil и возвращает RetryingProvider
func NewRetryingProvider(next Provider, logger logx.Logger, retries counter, cfg RetryConfig) *RetryingProvider {
	if next == nil {
		return nil
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &RetryingProvider{next: next, logger: logger, retries: retries, cfg: cfg}
}

// Name returns the wrapped provider name.
func (p *RetryingProvider) Name() string { return p.next.Name() }

// ListMethods calls the wrapped provider until success, a permanent error or ctx expiry.
func (p *RetryingProvider) ListMethods(ctx context.Context, c domain.Checkout, lines []domain.CheckoutLine) ([]RawMethod, error) {
	var lastErr error
	for attempt := 1; attempt <= p.cfg.MaxAttempts; attempt++ {
		methods, err := p.next.ListMethods(ctx, c, lines)
		if err == nil {
			return methods, nil
		}
		lastErr = err
		// проверяем условия повтора
		if ctx.Err() != nil || attempt == p.cfg.MaxAttempts || !isRetryable(err) {
			break
		}
		delay := backoff(p.cfg.BaseDelay, p.cfg.MaxDelay, attempt)
		if p.retries != nil {
			p.retries.Inc()
		}
		p.logger.Warn("delivery provider retry",
			logx.String("provider", p.next.Name()),
			logx.Int("attempt", attempt),
			logx.Duration("delay", delay),
			logx.Err(err),
		)
		if !sleepWithContext(ctx, delay) {
			break
		}
	}
	return nil, lastErr
}

// isRetryable определяет, является ли ошибка повторяемой
func isRetryable(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		switch se.Code {
		case http.StatusTooManyRequests,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		default:
			return false
		}
	}
	if errors.Is(err, errMalformed) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// backoff вычисляет задержку повтора
func backoff(base, max time.Duration, attempt int) time.Duration {
	d := base << (attempt - 1)
	if d > max {
		return max
	}
	return d
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
