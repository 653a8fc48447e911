package delivery

import (
	"context"
	"fmt"
	"maps"
	"strings"

	"service-checkout-delivery/internal/apperr"
	"service-checkout-delivery/internal/domain"
	"service-checkout-delivery/internal/logx"
	"service-checkout-delivery/internal/ports/deliverytx"
)

// Assigner applies a caller's delivery method choice to a checkout.
type Assigner struct {
	cache  deliveryCache
	runner deliverytx.Runner
	points collectionPoints
	prices priceInvalidator
	events eventEmitter
	logger logx.Logger
}

// NewAssigner creates an Assigner.
func NewAssigner(
	cache deliveryCache,
	runner deliverytx.Runner,
	points collectionPoints,
	prices priceInvalidator,
	events eventEmitter,
	logger logx.Logger,
) *Assigner {
	return &Assigner{
		cache:  cache,
		runner: runner,
		points: points,
		prices: prices,
		events: events,
		logger: logger.With(logx.Component("delivery_assigner")),
	}
}

// AssignDeliveryMethod assigns, switches or clears the checkout's delivery method
// in one transaction. Nothing is written and no event is sent when the checkout
// already has the requested method.
func (a *Assigner) AssignDeliveryMethod(ctx context.Context, checkoutID string, method domain.DeliveryMethod) error {
	checkoutID = strings.TrimSpace(checkoutID)
	if checkoutID == "" || method == nil {
		return apperr.ErrInvalid
	}

	if _, ok := method.(domain.ShippingMethod); ok {
		// make sure the stored set is fresh before validating against it
		if _, err := a.cache.GetOrRefreshDeliveryOptions(ctx, checkoutID); err != nil {
			return err
		}
	}

	var (
		updated domain.Checkout
		lines   []domain.CheckoutLine
		changed []string
	)
	err := a.runner.WithTx(ctx, func(tx deliverytx.Repository) error {
		c, err := tx.LockCheckoutForUpdate(ctx, checkoutID)
		if err != nil {
			return err
		}

		updated = c.Clone()
		switch m := method.(type) {
		case domain.NoDeliveryMethod:
			clearDeliveryMethod(&updated)
		case domain.ShippingMethod:
			stored, err := tx.ListDeliveryOptions(ctx, checkoutID)
			if err != nil {
				return persistenceErr("list delivery options", err)
			}
			set := cachedSet(*c, stored)
			if !set.Selectable(m.OptionID) {
				return fmt.Errorf("%w: delivery option %q", apperr.ErrInvalidSelection, m.OptionID)
			}
			opt, _ := set.Lookup(m.OptionID)
			assignShipping(&updated, opt)
		case domain.CollectionPointMethod:
			cp, err := a.points.GetCollectionPoint(ctx, m.WarehouseID)
			if err != nil {
				return err
			}
			if cp == nil || cp.ChannelID != c.ChannelID {
				return fmt.Errorf("%w: collection point %q", apperr.ErrInvalidSelection, m.WarehouseID)
			}
			assignCollectionPoint(&updated, *cp)
		default:
			return fmt.Errorf("%w: unsupported delivery method %T", apperr.ErrInvalid, method)
		}

		changed = changedFields(*c, updated)
		if len(changed) == 0 {
			return nil
		}

		lines, err = tx.ListLines(ctx, checkoutID)
		if err != nil {
			return persistenceErr("list lines", err)
		}
		invalidated, err := a.prices.InvalidateCheckoutPrices(ctx, &updated, lines, true)
		if err != nil {
			return fmt.Errorf("invalidate prices: %w", err)
		}
		if err := tx.UpdateCheckoutFields(ctx, &updated, append(changed, invalidated...)); err != nil {
			return persistenceErr("update checkout", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if len(changed) == 0 {
		return nil
	}

	a.logger.Info("delivery method assigned",
		logx.String("checkout_id", checkoutID),
		logx.String("state", string(updated.State())),
		logx.Strings("fields", changed),
	)
	if err := a.events.EmitCheckoutUpdated(ctx, updated, lines); err != nil {
		a.logger.Error("checkout updated event failed",
			logx.String("checkout_id", checkoutID),
			logx.Err(err),
		)
	}
	return nil
}

func clearDeliveryMethod(c *domain.Checkout) {
	if c.CollectionPointID != "" {
		// the address was borrowed from the warehouse
		c.ShippingAddress = nil
		c.SaveShippingAddress = true
	}
	c.AssignedDeliveryID = ""
	c.AssignedDeliveryValid = false
	c.ShippingMethodName = ""
	c.CollectionPointID = ""
	c.BaseShippingPrice = domain.ZeroMoney(c.Currency)
}

func assignShipping(c *domain.Checkout, opt domain.DeliveryOption) {
	c.CollectionPointID = ""
	c.AssignedDeliveryID = opt.ID
	c.AssignedDeliveryValid = opt.Valid && opt.Active
	c.ShippingMethodName = opt.Name
	c.BaseShippingPrice = opt.Price
	delete(c.Metadata, domain.MetaActiveAppShippingID)
}

func assignCollectionPoint(c *domain.Checkout, cp domain.CollectionPoint) {
	c.AssignedDeliveryID = ""
	c.AssignedDeliveryValid = false
	c.ShippingMethodName = ""
	c.CollectionPointID = cp.ID
	addr := cp.Address
	c.ShippingAddress = &addr
	c.SaveShippingAddress = false
	c.BaseShippingPrice = domain.ZeroMoney(c.Currency)
}

// changedFields lists the persisted fields that differ between before and after.
func changedFields(before, after domain.Checkout) []string {
	var fields []string
	if !domain.SameAddress(before.ShippingAddress, after.ShippingAddress) {
		fields = append(fields, domain.FieldShippingAddress)
	}
	if before.SaveShippingAddress != after.SaveShippingAddress {
		fields = append(fields, domain.FieldSaveShippingAddress)
	}
	if before.AssignedDeliveryID != after.AssignedDeliveryID {
		fields = append(fields, domain.FieldAssignedDeliveryID)
	}
	if before.AssignedDeliveryValid != after.AssignedDeliveryValid {
		fields = append(fields, domain.FieldAssignedDeliveryValid)
	}
	if before.ShippingMethodName != after.ShippingMethodName {
		fields = append(fields, domain.FieldShippingMethodName)
	}
	if before.CollectionPointID != after.CollectionPointID {
		fields = append(fields, domain.FieldCollectionPointID)
	}
	if !before.BaseShippingPrice.Equal(after.BaseShippingPrice) {
		fields = append(fields, domain.FieldBaseShippingPrice)
	}
	if !maps.Equal(before.Metadata, after.Metadata) {
		fields = append(fields, domain.FieldMetadata)
	}
	return fields
}
