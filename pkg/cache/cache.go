package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// Cache is a generic key-value store with TTL support.
//
// TTL semantics for Set and Add:
//   - Positive duration: item expires after this duration
//   - Zero: use the cache's configured default TTL
//   - Negative: item never expires
type Cache[V any] interface {
	// Get retrieves a value by key.
	// Returns ErrNotFound if the key does not exist or has expired.
	Get(ctx context.Context, key string) (V, error)

	// Set stores a value, replacing any previous one.
	Set(ctx context.Context, key string, value V, ttl time.Duration) error

	// Add stores a value only if the key is absent or expired.
	// It reports whether the value was stored. The check and the write are atomic.
	Add(ctx context.Context, key string, value V, ttl time.Duration) (bool, error)

	// Delete removes a key.
	Delete(ctx context.Context, key string) error

	// Close releases resources such as background goroutines.
	Close() error
}

// Counter is a fixed-window hit counter.
type Counter interface {
	// Incr adds one hit to key. The first hit opens a window of the given
	// length; the count resets when it closes. It returns the count within
	// the current window and the time left until the window closes.
	Incr(ctx context.Context, key string, window time.Duration) (count int64, reset time.Duration, err error)
}

// Marshaler serializes values for byte-oriented backends such as Redis.
type Marshaler[V any] interface {
	Marshal(v V) ([]byte, error)
	Unmarshal(data []byte) (V, error)
}

type jsonMarshaler[V any] struct{}

func (jsonMarshaler[V]) Marshal(v V) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Join(ErrMarshal, err)
	}
	return data, nil
}

func (jsonMarshaler[V]) Unmarshal(data []byte) (V, error) {
	var v V
	if err := json.Unmarshal(data, &v); err != nil {
		return v, errors.Join(ErrUnmarshal, err)
	}
	return v, nil
}

// resolveTTL maps the zero TTL to def.
func resolveTTL(ttl, def time.Duration) time.Duration {
	if ttl == 0 {
		return def
	}
	return ttl
}
