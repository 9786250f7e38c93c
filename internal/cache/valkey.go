package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/asoloviev/nutritrack/internal/model"
)

var _ model.Cache = (*Valkey)(nil)

// Valkey is a shared cache backed by a Valkey (or Redis-compatible)
// server, for deployments running more than one instance.
type Valkey struct {
	client valkey.Client
}

// NewValkey creates a Valkey-backed cache.
func NewValkey(client valkey.Client) *Valkey {
	return &Valkey{client: client}
}

// Get retrieves a value from the cache.
// Returns the value, whether it was found, and any error.
func (v *Valkey) Get(ctx context.Context, key string) ([]byte, bool, error) {
	resp := v.client.Do(ctx, v.client.B().Get().Key(key).Build())
	if err := resp.Error(); err != nil {
		// Key not found is not an error in our semantics.
		if valkey.IsValkeyNil(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get cached value: %w", err)
	}

	data, err := resp.AsBytes()
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached value: %w", err)
	}

	return data, true, nil
}

// Set stores a value with the given expiry. The server expires the
// entry on its own; no client-side bookkeeping is needed.
func (v *Valkey) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	cmd := v.client.B().Set().Key(key).Value(valkey.BinaryString(value)).Ex(ttl).Build()
	if err := v.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("failed to set cached value: %w", err)
	}
	return nil
}

// Close releases the client connection.
func (v *Valkey) Close() error {
	v.client.Close()
	return nil
}
