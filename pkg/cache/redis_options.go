package cache

import "time"

// RedisOption configures the Redis cache and counter.
type RedisOption func(*redisOptions)

type redisOptions struct {
	prefix     string
	defaultTTL time.Duration
}

func defaultRedisOptions() *redisOptions {
	return &redisOptions{
		defaultTTL: time.Hour,
	}
}

// key namespaces k as "{prefix}:{k}".
func (o *redisOptions) key(k string) string {
	if o.prefix == "" {
		return k
	}
	return o.prefix + ":" + k
}

// WithRedisDefaultTTL sets the expiry used when Set or Add get a zero TTL.
// Default: 1 hour.
func WithRedisDefaultTTL(d time.Duration) RedisOption {
	return func(o *redisOptions) {
		o.defaultTTL = d
	}
}

// WithPrefix namespaces keys so several stores can share one Redis database.
func WithPrefix(prefix string) RedisOption {
	return func(o *redisOptions) {
		o.prefix = prefix
	}
}
