//go:generate mockgen -source=contracts.go -destination=delivery_mocks_test.go -package=delivery

package delivery

import (
	"context"

	"service-checkout-delivery/internal/domain"
)

type checkoutReader interface {
	// GetCheckout returns nil, nil when the checkout does not exist.
	GetCheckout(ctx context.Context, checkoutID string) (*domain.Checkout, error)
	ListLines(ctx context.Context, checkoutID string) ([]domain.CheckoutLine, error)
	ListDeliveryOptions(ctx context.Context, checkoutID string) ([]domain.DeliveryOption, error)
}

type internalLookup interface {
	FindInternalOptions(ctx context.Context, c domain.Checkout, lines []domain.CheckoutLine, subtotal domain.Money) ([]domain.DeliveryOption, error)
}

type externalGateway interface {
	FindExternalOptions(ctx context.Context, c domain.Checkout, lines []domain.CheckoutLine) []domain.DeliveryOption
	ApplyExclusions(ctx context.Context, c domain.Checkout, candidates []domain.DeliveryOption) []domain.DeliveryOption
}

type subtotalCalculator interface {
	ShippingLookupSubtotal(ctx context.Context, c domain.Checkout, lines []domain.CheckoutLine) (domain.Money, error)
}

type priceInvalidator interface {
	InvalidateCheckoutPrices(ctx context.Context, c *domain.Checkout, lines []domain.CheckoutLine, recalculateDiscount bool) ([]string, error)
}

type eventEmitter interface {
	EmitCheckoutUpdated(ctx context.Context, c domain.Checkout, lines []domain.CheckoutLine) error
}

type collectionPoints interface {
	// GetCollectionPoint returns nil, nil when the warehouse does not offer click-and-collect.
	GetCollectionPoint(ctx context.Context, id string) (*domain.CollectionPoint, error)
	ListCollectionPoints(ctx context.Context, channelID string) ([]domain.CollectionPoint, error)
}

type deliveryCache interface {
	GetOrRefreshDeliveryOptions(ctx context.Context, checkoutID string) (domain.CachedDeliverySet, error)
}

type labeledCounter interface {
	Inc(label string)
}
