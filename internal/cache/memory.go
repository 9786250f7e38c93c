package cache

import (
	"context"
	"time"

	"github.com/maypok86/otter/v2"

	"github.com/asoloviev/nutritrack/internal/model"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

var _ model.Cache = (*Memory)(nil)

// Memory is an in-memory cache implementation using otter.
type Memory struct {
	cache *otter.Cache[string, memoryEntry]
}

// NewMemory creates a new in-memory cache. defaultTTL bounds how long
// otter retains entries; each entry additionally carries its own expiry
// checked on read.
func NewMemory(defaultTTL time.Duration, maxSize int) (*Memory, error) {
	cache := otter.Must(&otter.Options[string, memoryEntry]{
		MaximumSize:      maxSize,
		ExpiryCalculator: otter.ExpiryCreating[string, memoryEntry](defaultTTL),
	})

	return &Memory{
		cache: cache,
	}, nil
}

// Get retrieves a value from the cache.
// Returns the value, whether it was found, and any error.
func (m *Memory) Get(ctx context.Context, key string) ([]byte, bool, error) {
	entry, ok := m.cache.GetEntry(key)
	if !ok {
		return nil, false, nil
	}
	if time.Now().After(entry.Value.expiresAt) {
		m.cache.Invalidate(key)
		return nil, false, nil
	}

	return entry.Value.data, true, nil
}

// Set stores a value in the cache with the given expiry.
func (m *Memory) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.cache.Set(key, memoryEntry{data: value, expiresAt: time.Now().Add(ttl)})
	return nil
}

// Close releases cache resources. The in-memory cache holds none.
func (m *Memory) Close() error {
	return nil
}
