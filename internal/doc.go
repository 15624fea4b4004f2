// Package internal implements the application core re-exported by the root
// portfolio package. Import "github.com/sanjamesdev/portfolio" instead.
//
// # Core types
//
//   - App: routing, middleware, static files, health endpoints and graceful shutdown
//   - Context: request/response access, JSON helpers and request-scoped logging
//   - Router: the interface handlers use to declare routes
//   - Handler: implemented by types that declare routes
//   - HandlerFunc: a route handler returning an error
//   - Middleware: wraps a HandlerFunc
//   - ErrorHandler: renders errors returned from handlers
//
// # Context as context.Context
//
// Context implements context.Context by delegating to the request context,
// so it can be passed to anything that takes one:
//
//	func (h *ContactHandler) submit(c portfolio.Context) error {
//	    if err := h.relay.Relay(c, s); err != nil {
//	        return err
//	    }
//	    return c.JSON(http.StatusOK, successResponse{Success: true})
//	}
//
// Values stored with Context.Set travel with the request context, so they
// are visible to every later middleware and to the handler.
//
// # Middleware order
//
// Global middleware passed to WithMiddleware runs before route middleware,
// in the order given. Route middleware passed to Router methods also runs
// in the order given, the first one outermost.
//
// # Errors
//
// A non-nil error returned from a handler goes to the ErrorHandler unless
// the response was already written. Without an ErrorHandler the client gets
// a plain 500.
//
// # Health
//
// WithHealthChecks mounts /health/live and /health/ready. Readiness runs
// the checks registered with WithReadinessCheck concurrently and answers
// 503 when any fails.
package internal
