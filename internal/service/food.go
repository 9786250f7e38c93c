package service

import (
	"context"
	"strconv"

	"github.com/asoloviev/nutritrack/internal/apierrors"
	"github.com/asoloviev/nutritrack/internal/logger"
	"github.com/asoloviev/nutritrack/internal/model"
)

// Food proxies the upstream nutrition API through a cache-aside layer.
// Concurrent misses for the same id may each fetch upstream; the last
// write wins.
type Food struct {
	cache   model.Cache
	fetcher model.ProductFetcher
	logger  *logger.Logger
}

func NewFood(
	cache model.Cache,
	fetcher model.ProductFetcher,
	logger *logger.Logger,
) *Food {
	return &Food{
		cache:   cache,
		fetcher: fetcher,
		logger:  logger,
	}
}

// GetFood returns the nutrition payload for id. With force unset, a
// fresh cache entry is served without touching the upstream; otherwise
// the upstream is fetched and the cache repopulated with a 24-hour
// expiry. Upstream "not found" never populates the cache.
func (s *Food) GetFood(ctx context.Context, id int64, force bool) (model.Food, error) {
	key := strconv.FormatInt(id, 10)

	if !force {
		data, found, err := s.cache.Get(ctx, key)
		if err != nil {
			// An unreachable cache degrades to a miss.
			s.logger.Warn("Food service: cache lookup failed",
				"food_id", id,
				"error", err.Error())
		}
		if err == nil && found {
			s.logger.Debug("Food service: cache hit",
				"food_id", id)
			return model.Food{Data: data, FromCache: true}, nil
		}
	}

	resp, err := s.fetcher.FetchProduct(ctx, id)
	if err != nil {
		s.logger.Error("Food service: upstream fetch failed",
			"food_id", id,
			"error", err.Error())
		return model.Food{}, apierrors.NewErrUpstreamUnavailable()
	}

	if resp.Status == 0 {
		return model.Food{}, apierrors.NewErrFoodNotFound()
	}

	if err := s.cache.Set(ctx, key, resp.Body, model.FoodCacheTTL); err != nil {
		s.logger.Warn("Food service: failed to populate cache",
			"food_id", id,
			"error", err.Error())
	}

	s.logger.Info("Food service: fetched from upstream",
		"food_id", id,
		"force", force)

	return model.Food{Data: resp.Body, FromCache: false}, nil
}
