package location

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/jonathan/match-engine/internal/types"
)

// defaultRequestTimeout bounds one collaborator round trip.
const defaultRequestTimeout = 2 * time.Second

// HTTPProvider fetches bundles from the location intelligence service over
// HTTP. Failures are returned to the caller, which degrades the location
// component to its fallback instead of failing the match.
type HTTPProvider struct {
	client *resty.Client
}

// NewHTTPProvider creates a provider against the given base URL. An optional
// API key is sent as a bearer token.
func NewHTTPProvider(baseURL, apiKey string) *HTTPProvider {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(defaultRequestTimeout).
		SetHeader("Content-Type", "application/json")
	if apiKey != "" {
		client.SetHeader("Authorization", "Bearer "+apiKey)
	}
	return &HTTPProvider{client: client}
}

// evaluatePayload is the wire request for the collaborator
type evaluatePayload struct {
	From types.Location `json:"from"`
	To   types.Location `json:"to"`
}

// Evaluate requests the precomputed bundle for the address pair.
func (p *HTTPProvider) Evaluate(ctx context.Context, from, to types.Location) (*Bundle, error) {
	var bundle Bundle
	resp, err := p.client.R().
		SetContext(ctx).
		SetBody(evaluatePayload{From: from, To: to}).
		SetResult(&bundle).
		Post("/v1/evaluate")
	if err != nil {
		return nil, fmt.Errorf("location intelligence call failed: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		// Unknown address pair; the scorer falls back to its heuristic.
		return nil, nil
	}
	if resp.IsError() {
		return nil, fmt.Errorf("location intelligence returned status %d", resp.StatusCode())
	}
	return &bundle, nil
}
