package providers

import "service-checkout-delivery/internal/domain"

// RawMethod is a provider's method before normalization.
type RawMethod struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Amount      string            `json:"amount"`
	Currency    string            `json:"currency"`
	MinDays     *int              `json:"minimum_delivery_days,omitempty"`
	MaxDays     *int              `json:"maximum_delivery_days,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

type lineDTO struct {
	VariantID          string `json:"variant_id"`
	Quantity           int    `json:"quantity"`
	UnitPrice          string `json:"unit_price"`
	IsShippingRequired bool   `json:"is_shipping_required"`
	WeightGrams        int64  `json:"weight_grams"`
}

// listMethodsRequest is posted to every provider.
type listMethodsRequest struct {
	CheckoutID      string          `json:"checkout_id"`
	ChannelID       string          `json:"channel_id"`
	Currency        string          `json:"currency"`
	ShippingAddress *domain.Address `json:"shipping_address"`
	Lines           []lineDTO       `json:"lines"`
}

type candidateDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Source   string `json:"source"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
	MinDays  *int   `json:"minimum_delivery_days,omitempty"`
	MaxDays  *int   `json:"maximum_delivery_days,omitempty"`
}

type filterRequest struct {
	CheckoutID      string         `json:"checkout_id"`
	ChannelID       string         `json:"channel_id"`
	ShippingMethods []candidateDTO `json:"shipping_methods"`
}

// Exclusion is one excluded option with its reason.
type Exclusion struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

type filterResponse struct {
	ExcludedMethods []Exclusion `json:"excluded_methods"`
}

func toListMethodsRequest(c domain.Checkout, lines []domain.CheckoutLine) listMethodsRequest {
	out := listMethodsRequest{
		CheckoutID:      c.ID,
		ChannelID:       c.ChannelID,
		Currency:        c.Currency,
		ShippingAddress: c.ShippingAddress,
		Lines:           make([]lineDTO, 0, len(lines)),
	}
	for _, l := range lines {
		out.Lines = append(out.Lines, lineDTO{
			VariantID:          l.VariantID,
			Quantity:           l.Quantity,
			UnitPrice:          l.UnitPrice.Amount.String(),
			IsShippingRequired: l.IsShippingRequired,
			WeightGrams:        l.WeightGrams,
		})
	}
	return out
}

func toFilterRequest(c domain.Checkout, candidates []domain.DeliveryOption) filterRequest {
	out := filterRequest{
		CheckoutID:      c.ID,
		ChannelID:       c.ChannelID,
		ShippingMethods: make([]candidateDTO, 0, len(candidates)),
	}
	for _, o := range candidates {
		out.ShippingMethods = append(out.ShippingMethods, candidateDTO{
			ID:       o.ID,
			Name:     o.Name,
			Source:   string(o.Source),
			Amount:   o.Price.Amount.String(),
			Currency: o.Price.Currency,
			MinDays:  o.MinDeliveryDays,
			MaxDays:  o.MaxDeliveryDays,
		})
	}
	return out
}
