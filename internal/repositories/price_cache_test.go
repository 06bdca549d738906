package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/sbilibin2017/gw-token-swap/internal/models"
)

func TestPriceCacheRepository(t *testing.T) {
	ctx := context.Background()

	// Start Redis container
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	require.NoError(t, rdb.Ping(ctx).Err())

	repo := NewPriceCacheRepository(rdb, 2*time.Second)

	at := time.Date(2023, 8, 29, 7, 10, 52, 0, time.UTC)
	observations := []models.PriceObservation{
		{Asset: "ETH", Price: decimal.RequireFromString("1645.93"), ObservedAt: at},
		{Asset: "USDC", Price: decimal.RequireFromString("1"), ObservedAt: at},
	}

	t.Run("Get before Set returns not cached", func(t *testing.T) {
		_, err := repo.GetPrices(ctx)
		assert.ErrorIs(t, err, ErrPricesNotCached)
	})

	t.Run("Set and Get prices", func(t *testing.T) {
		require.NoError(t, repo.SetPrices(ctx, observations))

		got, err := repo.GetPrices(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "ETH", got[0].Asset)
		assert.True(t, got[0].Price.Equal(observations[0].Price))
		assert.True(t, got[0].ObservedAt.Equal(at))
		assert.Equal(t, "USDC", got[1].Asset)
	})

	t.Run("Cached feed expires", func(t *testing.T) {
		require.NoError(t, repo.SetPrices(ctx, observations))

		// Wait for expiration (2s)
		time.Sleep(3 * time.Second)

		_, err := repo.GetPrices(ctx)
		assert.ErrorIs(t, err, ErrPricesNotCached)
	})
}

func TestPriceCacheRepository_LogsFailedGet(t *testing.T) {
	logs := captureLogs(t)

	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	repo := NewPriceCacheRepository(client, time.Minute)
	_, err := repo.GetPrices(context.Background())
	require.Error(t, err)

	assert.Zero(t, logs.FilterMessageSnippet("Ignored").Len())
	entries := logs.FilterMessage("price cache get").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "prices:latest", fields["key"])
	assert.NotEmpty(t, fields["error"])
}
