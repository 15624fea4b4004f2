package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// MemoryCounter is a process-local fixed-window Counter.
type MemoryCounter struct {
	m *Memory[int64]
}

// NewMemoryCounter creates a Counter held in process memory.
// WithMaxEntries bounds memory under a flood of distinct keys.
func NewMemoryCounter(opts ...MemoryOption) *MemoryCounter {
	return &MemoryCounter{m: NewMemory[int64](opts...)}
}

// Incr implements Counter.
func (c *MemoryCounter) Incr(_ context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	if window <= 0 {
		return 0, 0, ErrInvalidWindow
	}

	n, expiresAt, err := c.m.update(key, window, func(cur int64, _ bool) int64 {
		return cur + 1
	})
	if err != nil {
		return 0, 0, err
	}

	return n, max(expiresAt.Sub(c.m.now()), 0), nil
}

// Close stops the underlying janitor.
func (c *MemoryCounter) Close() error {
	return c.m.Close()
}

// incrScript bumps a counter and starts its window on the first hit.
// Returns {count, pttl}.
var incrScript = redis.NewScript(`
local n = redis.call("INCR", KEYS[1])
if n == 1 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return {n, redis.call("PTTL", KEYS[1])}
`)

// RedisCounter is a fixed-window Counter shared across instances.
type RedisCounter struct {
	client redis.UniversalClient
	opts   *redisOptions
}

// NewRedisCounter creates a Counter backed by Redis. Only WithPrefix applies.
func NewRedisCounter(client redis.UniversalClient, opts ...RedisOption) *RedisCounter {
	o := defaultRedisOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &RedisCounter{client: client, opts: o}
}

// Incr implements Counter atomically with a Lua script.
func (c *RedisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	if window <= 0 {
		return 0, 0, ErrInvalidWindow
	}

	res, err := incrScript.Run(ctx, c.client, []string{c.opts.key(key)}, window.Milliseconds()).Int64Slice()
	if err != nil {
		return 0, 0, err
	}
	if len(res) != 2 {
		return 0, 0, ErrUnmarshal
	}

	return res[0], time.Duration(max(res[1], 0)) * time.Millisecond, nil
}

var (
	_ Counter = (*MemoryCounter)(nil)
	_ Counter = (*RedisCounter)(nil)
)
