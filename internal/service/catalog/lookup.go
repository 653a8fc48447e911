package catalog

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"service-checkout-delivery/internal/domain"
)

type methodSource interface {
	ShippingMethodsFor(ctx context.Context, channelID, country string) ([]domain.CatalogShippingMethod, error)
}

// Lookup resolves internal catalog delivery options for a checkout.
type Lookup struct {
	repo methodSource
}

// NewLookup creates a new Lookup.
func NewLookup(repo methodSource) *Lookup {
	return &Lookup{repo: repo}
}

// FindInternalOptions returns catalog options whose zone covers the checkout's
// channel and country and whose price or weight tier matches.
// subtotal must already exclude shipping and specific-product voucher discounts.
func (l *Lookup) FindInternalOptions(
	ctx context.Context,
	checkout domain.Checkout,
	lines []domain.CheckoutLine,
	subtotal domain.Money,
) ([]domain.DeliveryOption, error) {
	if !domain.ShippingRequired(lines) || checkout.ShippingAddress == nil {
		return nil, nil
	}

	methods, err := l.repo.ShippingMethodsFor(ctx, checkout.ChannelID, checkout.Country())
	if err != nil {
		return nil, err
	}

	weight := domain.TotalWeightGrams(lines)
	out := make([]domain.DeliveryOption, 0, len(methods))
	for _, m := range methods {
		ok, err := eligible(m, subtotal, weight)
		if err != nil {
			return nil, fmt.Errorf("shipping method %d: %w", m.ID, err)
		}
		if ok {
			out = append(out, toOption(m))
		}
	}
	return out, nil
}

func eligible(m domain.CatalogShippingMethod, subtotal domain.Money, weight int64) (bool, error) {
	if m.Price.Currency != subtotal.Currency {
		return false, fmt.Errorf("currency %s does not match checkout currency %s", m.Price.Currency, subtotal.Currency)
	}
	switch m.Type {
	case domain.ShippingPriceBased:
		return inDecimalRange(subtotal.Amount, m.MinOrderAmount, m.MaxOrderAmount), nil
	case domain.ShippingWeightBased:
		if m.MinWeightGrams != nil && weight < *m.MinWeightGrams {
			return false, nil
		}
		if m.MaxWeightGrams != nil && weight > *m.MaxWeightGrams {
			return false, nil
		}
		return true, nil
	default:
		return false, fmt.Errorf("unknown shipping method type %q", m.Type)
	}
}

func inDecimalRange(v decimal.Decimal, min, max *decimal.Decimal) bool {
	if min != nil && v.LessThan(*min) {
		return false
	}
	if max != nil && v.GreaterThan(*max) {
		return false
	}
	return true
}

func toOption(m domain.CatalogShippingMethod) domain.DeliveryOption {
	return domain.DeliveryOption{
		ID:              domain.InternalOptionID(m.ID),
		Source:          domain.SourceInternal,
		Name:            m.Name,
		Description:     m.Description,
		Price:           m.Price,
		MinDeliveryDays: m.MinDeliveryDays,
		MaxDeliveryDays: m.MaxDeliveryDays,
		TaxClass:        m.TaxClass,
		Active:          true,
		Valid:           true,
		Metadata:        m.Metadata,
		PrivateMetadata: m.PrivateMetadata,
	}
}
