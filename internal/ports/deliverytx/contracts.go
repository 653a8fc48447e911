package deliverytx

import (
	"context"

	"service-checkout-delivery/internal/domain"
)

// Repository is the checkout delivery repository bound to a transaction.
type Repository interface {
	// LockCheckoutForUpdate takes a row lock held until the transaction ends.
	// It returns apperr.ErrNotFound when the checkout does not exist.
	LockCheckoutForUpdate(ctx context.Context, checkoutID string) (*domain.Checkout, error)
	ListLines(ctx context.Context, checkoutID string) ([]domain.CheckoutLine, error)
	ListDeliveryOptions(ctx context.Context, checkoutID string) ([]domain.DeliveryOption, error)
	// UpsertDeliveryOptions inserts or updates rows keyed by (checkout, option id, source, valid).
	UpsertDeliveryOptions(ctx context.Context, checkoutID string, opts []domain.DeliveryOption) error
	DeleteDeliveryOptionsExcept(ctx context.Context, checkoutID string, keep []domain.DeliveryOption) error
	// UpdateCheckoutFields writes only the named fields.
	UpdateCheckoutFields(ctx context.Context, c *domain.Checkout, fields []string) error
}

// Runner is a transaction runner
type Runner interface {
	WithTx(ctx context.Context, fn func(tx Repository) error) error
}
