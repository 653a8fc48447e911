package handlers

import (
	"time"

	"service-checkout-delivery/internal/domain"
)

type moneyDTO struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

type deliveryOptionDTO struct {
	ID              string            `json:"id"`
	Source          string            `json:"source"`
	Name            string            `json:"name"`
	Description     string            `json:"description,omitempty"`
	Price           moneyDTO          `json:"price"`
	MinDeliveryDays *int              `json:"min_delivery_days,omitempty"`
	MaxDeliveryDays *int              `json:"max_delivery_days,omitempty"`
	TaxClassID      string            `json:"tax_class_id,omitempty"`
	Active          bool              `json:"active"`
	Message         string            `json:"message,omitempty"`
	Metadata        map[string]string `json:"metadata,omitempty"`
}

type deliveryOptionsResponse struct {
	CheckoutID       string              `json:"checkout_id"`
	Options          []deliveryOptionDTO `json:"options"`
	AssignedOptionID string              `json:"assigned_option_id,omitempty"`
	AssignedIsValid  bool                `json:"assigned_is_valid"`
	AssignedOption   *deliveryOptionDTO  `json:"assigned_option,omitempty"`
	StaleAt          time.Time           `json:"stale_at"`
}

type collectionPointDTO struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Address domain.Address `json:"address"`
}

type collectionPointsResponse struct {
	CollectionPoints []collectionPointDTO `json:"collection_points"`
}

// Delivery method kinds accepted by PUT /checkouts/{id}/delivery-method.
const (
	methodTypeNone            = "none"
	methodTypeShipping        = "shipping"
	methodTypeCollectionPoint = "collection_point"
)

type assignDeliveryMethodRequest struct {
	Type string `json:"type"`
	ID   string `json:"id,omitempty"`
}
