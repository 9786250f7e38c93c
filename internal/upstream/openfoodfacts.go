// Package upstream talks to the external nutrition-data API.
package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/asoloviev/nutritrack/internal/model"
)

var _ model.ProductFetcher = (*Client)(nil)

// Client fetches product payloads from an OpenFoodFacts-compatible API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an upstream client. baseURL must end with the
// product path prefix, e.g. "https://world.openfoodfacts.org/api/v0/product/".
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchProduct retrieves the product payload for id. The returned
// Status is the upstream's own found/not-found field; transport and
// decode problems are returned as errors.
func (c *Client) FetchProduct(ctx context.Context, id int64) (model.ProductResponse, error) {
	url := fmt.Sprintf("%s%d.json", c.baseURL, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return model.ProductResponse{}, fmt.Errorf("failed to build upstream request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.ProductResponse{}, fmt.Errorf("failed to call upstream: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.ProductResponse{}, fmt.Errorf("upstream returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.ProductResponse{}, fmt.Errorf("failed to read upstream body: %w", err)
	}

	var probe struct {
		Status int `json:"status"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return model.ProductResponse{}, fmt.Errorf("failed to decode upstream body: %w", err)
	}

	return model.ProductResponse{
		Status: probe.Status,
		Body:   body,
	}, nil
}
