//go:generate mockgen -source=contracts.go -destination=checkoutevents_mocks_test.go -package=checkoutevents_test

package checkoutevents

import (
	"context"
	"time"
)

// DeliveryStore is the part of the checkout store touched by lifecycle events.
type DeliveryStore interface {
	// MarkDeliveryStale moves the staleness deadline back to at and touches the row;
	// false when the deadline was already earlier.
	MarkDeliveryStale(ctx context.Context, checkoutID string, at time.Time) (bool, error)
	DeleteDeliveryOptions(ctx context.Context, checkoutID string) (int64, error)
}
