// Package middlewares provides the HTTP middleware used by the portfolio
// server.
//
// # Request ID
//
// RequestID reuses an ID supplied by a proxy or generates a UUIDv7, stores
// it in the request context and echoes it in X-Request-ID. Pair it with
// RequestIDExtractor so every log record carries request_id:
//
//	log := logger.NewWithConfig(cfg.Logger, middlewares.RequestIDExtractor())
//
// # Request logging
//
// RequestLogger writes one record per request with method, path, status,
// size and duration. 4xx responses log at WARN and 5xx at ERROR. Paths
// passed to WithSkipPaths log at DEBUG.
//
// # Recover and Timeout
//
// Recover turns a panic into a *PanicError. Timeout puts a deadline on the
// request context (see GetTimeoutContext) and runs the handler on the same
// goroutine. When the deadline passes and nothing was written, it returns a
// *TimeoutError. Neither writes a response; the error is rendered by route
// middleware or the app's ErrorHandler.
//
// # Rate limiting
//
// RateLimit counts requests per client in a fixed window backed by a
// cache.Counter (in memory or Redis) and rejects excess requests with a
// *RateLimitError and a Retry-After header:
//
//	r.POST("/api/contact", h.submit,
//	    middlewares.RateLimit(counter, 5, 10*time.Minute),
//	)
//
// # CORS
//
// CORS answers preflight requests and sets the allow headers for listed
// origins. It is only needed when the page and the API are served from
// different origins.
//
// # Order
//
//	portfolio.WithMiddleware(
//	    middlewares.RequestID(),
//	    middlewares.RequestLogger(middlewares.WithSkipPaths("/health")),
//	    middlewares.CORS(middlewares.WithAllowOrigins(origins...)),
//	    middlewares.Timeout(30*time.Second),
//	)
package middlewares
