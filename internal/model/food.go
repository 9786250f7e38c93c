package model

import (
	"context"
	"encoding/json"
	"time"
)

// FoodCacheTTL bounds how long an upstream payload stays cached.
const FoodCacheTTL = 24 * time.Hour

// Cache is a byte-oriented key/value store with per-entry expiry.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Close() error
}

// ProductResponse is the upstream nutrition payload. Status is the
// upstream's own found/not-found signal, not an HTTP status.
type ProductResponse struct {
	Status int
	Body   json.RawMessage
}

// ProductFetcher retrieves a product from the upstream nutrition API.
type ProductFetcher interface {
	FetchProduct(ctx context.Context, id int64) (ProductResponse, error)
}

// Food is a proxied nutrition payload. FromCache is set only when the
// payload was served from the cache rather than fetched upstream.
type Food struct {
	Data      json.RawMessage
	FromCache bool
}
