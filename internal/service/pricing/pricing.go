package pricing

import (
	"context"
	"time"

	"service-checkout-delivery/internal/domain"
)

// Calculator computes the subtotal used for shipping lookups.
type Calculator struct{}

// NewCalculator returns a Calculator.
func NewCalculator() Calculator { return Calculator{} }

// ShippingLookupSubtotal sums line totals and subtracts the voucher discount,
// except for shipping and specific-product vouchers whose discount may depend
// on the shipping option being chosen.
func (Calculator) ShippingLookupSubtotal(_ context.Context, c domain.Checkout, lines []domain.CheckoutLine) (domain.Money, error) {
	total := domain.ZeroMoney(c.Currency)
	for _, l := range lines {
		total = total.Add(l.Total())
	}
	if c.Voucher != nil && !c.Voucher.Type.AffectsShippingLookup() {
		total = total.Sub(c.Voucher.Discount)
	}
	return total, nil
}

// Invalidator expires cached checkout prices so the pricing engine recomputes them.
type Invalidator struct {
	now func() time.Time
}

// NewInvalidator returns an Invalidator using the wall clock.
func NewInvalidator() *Invalidator {
	return &Invalidator{now: func() time.Time { return time.Now().UTC() }}
}

// InvalidateCheckoutPrices marks prices (and optionally discounts) expired and
// returns the changed field names.
func (i *Invalidator) InvalidateCheckoutPrices(
	_ context.Context,
	c *domain.Checkout,
	_ []domain.CheckoutLine,
	recalculateDiscount bool,
) ([]string, error) {
	now := i.now()
	c.PriceExpiration = now
	fields := []string{domain.FieldPriceExpiration}
	if recalculateDiscount {
		c.DiscountExpiration = now
		fields = append(fields, domain.FieldDiscountExpiration)
	}
	return fields, nil
}
