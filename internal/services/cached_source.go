package services

//go:generate mockgen -source=cached_source.go -destination=mock_cached_source.go -package=services

import (
	"context"

	"github.com/sbilibin2017/gw-token-swap/internal/logger"
	"github.com/sbilibin2017/gw-token-swap/internal/models"
)

// PriceCache stores the raw feed for a short time so several instances share one upstream fetch.
type PriceCache interface {
	GetPrices(ctx context.Context) ([]models.PriceObservation, error)
	SetPrices(ctx context.Context, observations []models.PriceObservation) error
}

// CachedPriceSource reads through a PriceCache before hitting the upstream source.
type CachedPriceSource struct {
	source PriceSource
	cache  PriceCache
}

// NewCachedPriceSource wraps source with cache.
func NewCachedPriceSource(source PriceSource, cache PriceCache) *CachedPriceSource {
	return &CachedPriceSource{source: source, cache: cache}
}

// FetchPrices returns cached observations when present, otherwise fetches and caches them.
// Cache failures are logged and never fail the fetch.
func (s *CachedPriceSource) FetchPrices(ctx context.Context) ([]models.PriceObservation, error) {
	observations, err := s.cache.GetPrices(ctx)
	if err == nil {
		return observations, nil
	}

	observations, err = s.source.FetchPrices(ctx)
	if err != nil {
		logger.Log.Errorw("failed to fetch prices", "error", err)
		return nil, err
	}

	if err := s.cache.SetPrices(ctx, observations); err != nil {
		logger.Log.Errorw("failed to cache prices", "error", err)
	}
	return observations, nil
}
