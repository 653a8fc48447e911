package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"service-checkout-delivery/internal/domain"
)

const maxResponseBytes = 1 << 20

// StatusError is returned for non-2xx provider responses.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Code)
}

// errMalformed marks a response body that could not be decoded.
var errMalformed = errors.New("malformed response")

// HTTPProvider calls a provider's rates endpoint.
type HTTPProvider struct {
	name   string
	url    string
	client *http.Client
}

// NewHTTPProvider creates a provider client. A nil client uses http.DefaultClient.
func NewHTTPProvider(name, url string, client *http.Client) *HTTPProvider {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPProvider{name: name, url: url, client: client}
}

// Name returns the provider name used as the external id prefix.
func (p *HTTPProvider) Name() string { return p.name }

// ListMethods posts the checkout and decodes the provider's methods.
func (p *HTTPProvider) ListMethods(ctx context.Context, c domain.Checkout, lines []domain.CheckoutLine) ([]RawMethod, error) {
	var out []RawMethod
	if err := postJSON(ctx, p.client, p.url, toListMethodsRequest(c, lines), &out); err != nil {
		return nil, fmt.Errorf("provider %s: %w", p.name, err)
	}
	return out, nil
}

func postJSON(ctx context.Context, client *http.Client, url string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return &StatusError{Code: resp.StatusCode}
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", errMalformed, err)
	}
	return nil
}
