package kafka

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"service-checkout-delivery/internal/service/checkoutevents"
)

// EventDTO is a checkout lifecycle message
type EventDTO struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	CheckoutID string    `json:"checkout_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ToDomain converts EventDTO to checkoutevents.Event; a malformed message yields a permanent error.
func ToDomain(dto EventDTO) (checkoutevents.Event, error) {
	checkoutID := strings.TrimSpace(dto.CheckoutID)
	if _, err := uuid.Parse(checkoutID); err != nil {
		return checkoutevents.Event{}, Permanent(fmt.Errorf("checkout_id %q: %w", dto.CheckoutID, err))
	}
	eventType := strings.TrimSpace(dto.Type)
	if eventType == "" {
		return checkoutevents.Event{}, Permanent(fmt.Errorf("empty event type"))
	}
	return checkoutevents.Event{
		EventID:    strings.TrimSpace(dto.EventID),
		Type:       eventType,
		CheckoutID: checkoutID,
		OccurredAt: dto.OccurredAt.UTC(),
	}, nil
}

// CheckoutUpdatedDTO is published after a delivery method change
type CheckoutUpdatedDTO struct {
	EventID            string    `json:"event_id"`
	Type               string    `json:"type"`
	CheckoutID         string    `json:"checkout_id"`
	DeliveryState      string    `json:"delivery_state"`
	AssignedDeliveryID string    `json:"assigned_delivery_id,omitempty"`
	CollectionPointID  string    `json:"collection_point_id,omitempty"`
	OccurredAt         time.Time `json:"occurred_at"`
}
