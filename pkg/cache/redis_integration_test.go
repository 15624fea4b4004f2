//go:build integration

package cache_test

import (
	"context"
	"os"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/sanjamesdev/portfolio/pkg/cache"
	"github.com/sanjamesdev/portfolio/pkg/redis"
)

const testRedisURL = "redis://localhost:6379/0"

func newTestRedisClient(t *testing.T) goredis.UniversalClient {
	t.Helper()

	url := os.Getenv("REDIS_URL")
	if url == "" {
		url = testRedisURL
	}

	ctx := context.Background()
	client, err := redis.Open(ctx, redis.Config{URL: url, ConnectRetries: 1})
	require.NoError(t, err, "failed to connect to Redis")

	t.Cleanup(func() {
		_ = client.FlushDB(ctx).Err()
		_ = client.Close()
	})

	return client
}

func TestRedis_GetSetAdd(t *testing.T) {
	client := newTestRedisClient(t)
	ctx := context.Background()

	c := cache.NewRedis[string](client, nil, cache.WithPrefix("test-cache"))

	_, err := c.Get(ctx, "missing")
	require.ErrorIs(t, err, cache.ErrNotFound)

	require.NoError(t, c.Set(ctx, "k", "v", time.Minute))
	val, err := c.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "v", val)

	added, err := c.Add(ctx, "k", "other", time.Minute)
	require.NoError(t, err)
	require.False(t, added)

	require.NoError(t, c.Delete(ctx, "k"))
	added, err = c.Add(ctx, "k", "other", time.Minute)
	require.NoError(t, err)
	require.True(t, added)

	exists, err := client.Exists(ctx, "test-cache:k").Result()
	require.NoError(t, err)
	require.Equal(t, int64(1), exists)
}

func TestRedisCounter_Incr(t *testing.T) {
	client := newTestRedisClient(t)
	ctx := context.Background()

	c := cache.NewRedisCounter(client, cache.WithPrefix("test-counter"))

	n, reset, err := c.Incr(ctx, "ip", time.Minute)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
	require.Greater(t, reset, 50*time.Second)

	n, _, err = c.Incr(ctx, "ip", time.Minute)
	require.NoError(t, err)
	require.Equal(t, int64(2), n)

	n, _, err = c.Incr(ctx, "short", 50*time.Millisecond)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	time.Sleep(100 * time.Millisecond)

	n, _, err = c.Incr(ctx, "short", 50*time.Millisecond)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
}
