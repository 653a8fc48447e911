package providers

import (
	"context"
	"net/http"

	"service-checkout-delivery/internal/domain"
)

// ExclusionPolicy decides which candidates must not be offered.
type ExclusionPolicy interface {
	ExcludedMethods(ctx context.Context, c domain.Checkout, candidates []domain.DeliveryOption) ([]Exclusion, error)
}

// NopPolicy excludes nothing.
type NopPolicy struct{}

// ExcludedMethods always returns no exclusions.
func (NopPolicy) ExcludedMethods(context.Context, domain.Checkout, []domain.DeliveryOption) ([]Exclusion, error) {
	return nil, nil
}

// WebhookPolicy asks a remote app which methods to exclude.
type WebhookPolicy struct {
	url    string
	client *http.Client
}

// NewWebhookPolicy creates a WebhookPolicy. A nil client uses http.DefaultClient.
func NewWebhookPolicy(url string, client *http.Client) *WebhookPolicy {
	if client == nil {
		client = http.DefaultClient
	}
	return &WebhookPolicy{url: url, client: client}
}

// ExcludedMethods posts all candidates and returns the exclusions.
func (p *WebhookPolicy) ExcludedMethods(ctx context.Context, c domain.Checkout, candidates []domain.DeliveryOption) ([]Exclusion, error) {
	if len(candidates) == 0 {
		return nil, nil
	}
	var resp filterResponse
	if err := postJSON(ctx, p.client, p.url, toFilterRequest(c, candidates), &resp); err != nil {
		return nil, err
	}
	return resp.ExcludedMethods, nil
}
