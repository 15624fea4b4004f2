package middlewares

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sanjamesdev/portfolio/internal"
)

// RequestLoggerConfig configures the request logging middleware.
type RequestLoggerConfig struct {
	// SkipPaths are logged at debug level only (health probes, assets).
	SkipPaths []string
}

// RequestLoggerOption configures RequestLoggerConfig.
type RequestLoggerOption func(*RequestLoggerConfig)

// WithSkipPaths demotes matching path prefixes to debug level.
func WithSkipPaths(prefixes ...string) RequestLoggerOption {
	return func(cfg *RequestLoggerConfig) {
		cfg.SkipPaths = append(cfg.SkipPaths, prefixes...)
	}
}

// RequestLogger returns middleware that logs one record per request with
// method, path, status, response size and duration. Server errors log at
// error level, client errors at warn, the rest at info.
// Register it after RequestID so records carry request_id.
func RequestLogger(opts ...RequestLoggerOption) internal.Middleware {
	cfg := &RequestLoggerConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			start := time.Now()
			err := next(c)

			rw := c.ResponseWriter()
			status := rw.Status()
			if err != nil && !rw.Written() {
				// The app-level error handler has not rendered yet.
				status = statusForError(err)
			}

			req := c.Request()
			attrs := []any{
				slog.String("method", req.Method),
				slog.String("path", req.URL.Path),
				slog.Int("status", status),
				slog.Int64("size", rw.Size()),
				slog.Duration("duration", time.Since(start)),
			}
			if err != nil {
				attrs = append(attrs, slog.Any("error", err))
			}

			switch {
			case status >= http.StatusInternalServerError:
				c.LogError("request", attrs...)
			case status >= http.StatusBadRequest:
				c.LogWarn("request", attrs...)
			case cfg.skip(req.URL.Path):
				c.LogDebug("request", attrs...)
			default:
				c.LogInfo("request", attrs...)
			}

			return err
		}
	}
}

func (cfg *RequestLoggerConfig) skip(path string) bool {
	for _, p := range cfg.SkipPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// statusForError predicts the status an error will be rendered with.
func statusForError(err error) int {
	if httpErr := internal.AsHTTPError(err); httpErr != nil {
		return httpErr.Code
	}
	if _, ok := AsRateLimitError(err); ok {
		return http.StatusTooManyRequests
	}
	if _, ok := AsTimeoutError(err); ok {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
