// Package cache provides the food payload cache with in-memory and
// shared backends.
package cache

import (
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/asoloviev/nutritrack/internal/config"
	"github.com/asoloviev/nutritrack/internal/logger"
	"github.com/asoloviev/nutritrack/internal/model"
)

// NewFromConfig creates a cache implementation based on the provided
// configuration. The cache type must be either "memory" or "valkey".
func NewFromConfig(cfg config.Cache, defaultTTL time.Duration, log *logger.Logger) (model.Cache, error) {
	switch cfg.Type {
	case "memory":
		log.Info("initializing in-memory cache",
			"max_size", cfg.MaxSize)

		return NewMemory(defaultTTL, cfg.MaxSize)

	case "valkey":
		log.Info("initializing shared cache",
			"address", cfg.Address)

		if cfg.Address == "" {
			return nil, fmt.Errorf("valkey address is required when cache type is valkey")
		}

		client, err := valkey.NewClient(valkey.ClientOption{
			InitAddress: []string{cfg.Address},
			Username:    cfg.Username,
			Password:    cfg.Password,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create valkey client: %w", err)
		}

		return NewValkey(client), nil

	default:
		return nil, fmt.Errorf("invalid cache type %q: must be either \"memory\" or \"valkey\"", cfg.Type)
	}
}
