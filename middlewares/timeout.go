package middlewares

import (
	"context"
	"errors"
	"time"

	"github.com/sanjamesdev/portfolio/internal"
)

// DefaultTimeout is the default request timeout.
const DefaultTimeout = 30 * time.Second

// timeoutContextKey stores the deadline-bound context.
type timeoutContextKey struct{}

// Timeout bounds a request to d. The handler runs on the calling goroutine
// with a deadline-bound context available through GetTimeoutContext; work
// that honours it returns once d elapses. A handler that hits the deadline
// without writing a response yields a *TimeoutError. Anything the handler
// already wrote stands, so route-level envelopes win over the timeout.
func Timeout(d time.Duration) internal.Middleware {
	if d <= 0 {
		d = DefaultTimeout
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			ctx, cancel := context.WithTimeout(c.Context(), d)
			defer cancel()

			c.Set(timeoutContextKey{}, ctx)

			err := next(c)
			if c.Written() || !errors.Is(ctx.Err(), context.DeadlineExceeded) {
				return err
			}

			c.LogWarn("request timeout", "timeout", d.String(), "error", err)
			return &TimeoutError{Duration: d}
		}
	}
}

// GetTimeoutContext returns the deadline-bound context set by Timeout,
// or the plain request context when Timeout is not installed.
func GetTimeoutContext(c internal.Context) context.Context {
	if v, ok := c.Get(timeoutContextKey{}).(context.Context); ok {
		return v
	}
	return c.Context()
}
