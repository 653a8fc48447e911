package checkoutevents

import "time"

// Event is a single checkout lifecycle event
type Event struct {
	EventID    string
	Type       string
	CheckoutID string
	OccurredAt time.Time
}

// List of handled event types
const (
	TypeAddressUpdated = "checkout.address_updated"
	TypeLinesUpdated   = "checkout.lines_updated"
	TypeVoucherUpdated = "checkout.voucher_updated"
	TypeCompleted      = "checkout.completed"
	TypeDeleted        = "checkout.deleted"
)
