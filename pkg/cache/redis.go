package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a cache backed by Redis, shared by every instance of the service.
// Values are serialized with the configured Marshaler (default: JSON).
type Redis[V any] struct {
	client    redis.UniversalClient
	opts      *redisOptions
	marshaler Marshaler[V]
}

// NewRedis creates a Redis-backed cache. A nil Marshaler selects JSON.
//
// Example:
//
//	seen := cache.NewRedis[time.Time](client, nil, cache.WithPrefix("contact:dedup"))
func NewRedis[V any](client redis.UniversalClient, m Marshaler[V], opts ...RedisOption) *Redis[V] {
	o := defaultRedisOptions()
	for _, opt := range opts {
		opt(o)
	}

	if m == nil {
		m = jsonMarshaler[V]{}
	}

	return &Redis[V]{
		client:    client,
		opts:      o,
		marshaler: m,
	}
}

// Get retrieves a value by key.
func (r *Redis[V]) Get(ctx context.Context, key string) (V, error) {
	var zero V

	data, err := r.client.Get(ctx, r.opts.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return zero, ErrNotFound
		}
		return zero, err
	}

	return r.marshaler.Unmarshal(data)
}

// Set stores a value with the given TTL.
func (r *Redis[V]) Set(ctx context.Context, key string, value V, ttl time.Duration) error {
	data, err := r.marshaler.Marshal(value)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, r.opts.key(key), data, r.ttl(ttl)).Err()
}

// Add stores value with SET NX.
func (r *Redis[V]) Add(ctx context.Context, key string, value V, ttl time.Duration) (bool, error) {
	data, err := r.marshaler.Marshal(value)
	if err != nil {
		return false, err
	}

	return r.client.SetNX(ctx, r.opts.key(key), data, r.ttl(ttl)).Result()
}

// Delete removes a key.
func (r *Redis[V]) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.opts.key(key)).Err()
}

// Close is a no-op; the client is owned by the caller (see pkg/redis.Shutdown).
func (r *Redis[V]) Close() error {
	return nil
}

// ttl maps the cache TTL semantics onto Redis, where 0 means no expiry.
func (r *Redis[V]) ttl(ttl time.Duration) time.Duration {
	return max(resolveTTL(ttl, r.opts.defaultTTL), 0)
}

var _ Cache[any] = (*Redis[any])(nil)
