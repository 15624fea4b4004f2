package middlewares

import (
	"math"
	"strconv"
	"time"

	"github.com/sanjamesdev/portfolio/internal"
	"github.com/sanjamesdev/portfolio/pkg/cache"
)

// RateLimitConfig configures the rate limit middleware.
type RateLimitConfig struct {
	// KeyPrefix namespaces counter keys, e.g. per route.
	KeyPrefix string

	// KeyExtractor identifies the client. Defaults to the remote address.
	KeyExtractor internal.Extractor

	// FailOpen lets requests through when the counter backend errors.
	FailOpen bool
}

// RateLimitOption configures RateLimitConfig.
type RateLimitOption func(*RateLimitConfig)

// WithRateLimitKeyPrefix sets the counter key prefix.
func WithRateLimitKeyPrefix(prefix string) RateLimitOption {
	return func(cfg *RateLimitConfig) {
		cfg.KeyPrefix = prefix
	}
}

// WithRateLimitKey sets how the client key is derived from the request.
//
// Example:
//
//	middlewares.WithRateLimitKey(portfolio.NewExtractor(
//	    portfolio.FromForwardedFor(),
//	    portfolio.FromRemoteAddr(),
//	))
func WithRateLimitKey(ext internal.Extractor) RateLimitOption {
	return func(cfg *RateLimitConfig) {
		cfg.KeyExtractor = ext
	}
}

// WithRateLimitFailClosed rejects requests when the counter backend errors.
// By default such requests are let through and a warning is logged.
func WithRateLimitFailClosed() RateLimitOption {
	return func(cfg *RateLimitConfig) {
		cfg.FailOpen = false
	}
}

// RateLimit returns middleware that allows at most limit requests per
// client per window. Exceeding requests get a *RateLimitError and a
// Retry-After header; the handler is not called. A limit <= 0 disables
// the middleware.
func RateLimit(counter cache.Counter, limit int, window time.Duration, opts ...RateLimitOption) internal.Middleware {
	cfg := &RateLimitConfig{
		KeyPrefix:    "ratelimit",
		KeyExtractor: internal.NewExtractor(internal.FromRemoteAddr()),
		FailOpen:     true,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		if limit <= 0 || window <= 0 || counter == nil {
			return next
		}

		return func(c internal.Context) error {
			client, ok := cfg.KeyExtractor.Extract(c)
			if !ok {
				client = "unknown"
			}
			key := cfg.KeyPrefix + ":" + client

			n, reset, err := counter.Incr(c, key, window)
			if err != nil {
				c.LogWarn("rate limit counter failed", "error", err, "key", key)
				if cfg.FailOpen {
					return next(c)
				}
				return err
			}

			remaining := max(int64(limit)-n, 0)
			c.SetHeader("X-RateLimit-Limit", strconv.Itoa(limit))
			c.SetHeader("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if n > int64(limit) {
				c.SetHeader("Retry-After", strconv.Itoa(retryAfterSeconds(reset)))
				c.LogWarn("rate limit exceeded", "client", client, "count", n, "limit", limit)
				return &RateLimitError{Key: client, Limit: limit, RetryAfter: reset}
			}

			return next(c)
		}
	}
}

// retryAfterSeconds rounds up so clients never retry inside the window.
func retryAfterSeconds(d time.Duration) int {
	return max(int(math.Ceil(d.Seconds())), 1)
}
