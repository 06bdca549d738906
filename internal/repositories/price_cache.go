package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-token-swap/internal/logger"
	"github.com/sbilibin2017/gw-token-swap/internal/models"
)

// ErrPricesNotCached is returned when no unexpired feed is stored.
var ErrPricesNotCached = errors.New("prices not found in cache")

const pricesKey = "prices:latest"

// PriceCacheRepository keeps the last fetched price feed in Redis.
type PriceCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for the cached feed
}

// NewPriceCacheRepository creates a new repository instance with optional TTL
func NewPriceCacheRepository(client *redis.Client, expiration time.Duration) *PriceCacheRepository {
	return &PriceCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetPrices returns the cached observations
func (r *PriceCacheRepository) GetPrices(ctx context.Context) ([]models.PriceObservation, error) {
	val, err := r.client.Get(ctx, pricesKey).Bytes()
	if err != nil {
		logger.Log.Infow("price cache get",
			"key", pricesKey,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, ErrPricesNotCached
		}
		return nil, err
	}

	var observations []models.PriceObservation
	if err := json.Unmarshal(val, &observations); err != nil {
		logger.Log.Infow("price cache decode",
			"key", pricesKey,
			"value", string(val),
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow("price cache get",
		"key", pricesKey,
		"result", len(observations),
	)

	return observations, nil
}

// SetPrices caches observations in Redis with expiration
func (r *PriceCacheRepository) SetPrices(ctx context.Context, observations []models.PriceObservation) error {
	data, err := json.Marshal(observations)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, pricesKey, data, r.exp).Err()

	logger.Log.Infow("price cache set",
		"key", pricesKey,
		"count", len(observations),
		"error", err,
	)

	return err
}
