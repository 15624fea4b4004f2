package portfolio

import (
	"context"
	"io/fs"
	"log/slog"
	"net"
	"time"

	"github.com/sanjamesdev/portfolio/internal"
	"github.com/sanjamesdev/portfolio/pkg/health"
	"github.com/sanjamesdev/portfolio/pkg/logger"
)

type (
	// App orchestrates the HTTP server lifecycle.
	App = internal.App

	// Router is the interface handlers use to declare routes.
	Router = internal.Router

	// Context provides request/response access and helper methods.
	Context = internal.Context

	// Handler declares routes on a router.
	Handler = internal.Handler

	// HandlerFunc is the signature for route handlers.
	HandlerFunc = internal.HandlerFunc

	// Middleware wraps a HandlerFunc to add cross-cutting concerns.
	Middleware = internal.Middleware

	// ErrorHandler handles errors returned from handlers.
	ErrorHandler = internal.ErrorHandler

	// Option configures the application.
	Option = internal.Option

	// RunOption configures the server runtime.
	RunOption = internal.RunOption

	// HealthOption configures health check endpoints.
	HealthOption = internal.HealthOption

	// HTTPError is a handler error carrying a status code and a safe message.
	HTTPError = internal.HTTPError

	// ResponseWriter tracks status and body size of the response.
	ResponseWriter = internal.ResponseWriter

	// ContextExtractor extracts a slog attribute from context.
	ContextExtractor = logger.ContextExtractor

	// Extractor tries several request sources in order.
	Extractor = internal.Extractor

	// ExtractorSource reads a single value from the request.
	ExtractorSource = internal.ExtractorSource
)

// New creates a new application with the given options.
func New(opts ...Option) *App {
	return internal.New(opts...)
}

// App options.

func WithMiddleware(mw ...Middleware) Option {
	return internal.WithMiddleware(mw...)
}

func WithHandlers(h ...Handler) Option {
	return internal.WithHandlers(h...)
}

func WithStaticFiles(pattern string, fsys fs.FS, subDir string) Option {
	return internal.WithStaticFiles(pattern, fsys, subDir)
}

func WithErrorHandler(h ErrorHandler) Option {
	return internal.WithErrorHandler(h)
}

func WithNotFoundHandler(h HandlerFunc) Option {
	return internal.WithNotFoundHandler(h)
}

func WithMethodNotAllowedHandler(h HandlerFunc) Option {
	return internal.WithMethodNotAllowedHandler(h)
}

func WithHealthChecks(opts ...HealthOption) Option {
	return internal.WithHealthChecks(opts...)
}

func WithLogger(component string, extractors ...ContextExtractor) Option {
	return internal.WithLogger(component, extractors...)
}

func WithCustomLogger(l *slog.Logger) Option {
	return internal.WithCustomLogger(l)
}

func WithMaxBodyBytes(n int64) Option {
	return internal.WithMaxBodyBytes(n)
}

// Health options.

func WithLivenessPath(path string) HealthOption {
	return internal.WithLivenessPath(path)
}

func WithReadinessPath(path string) HealthOption {
	return internal.WithReadinessPath(path)
}

func WithReadinessCheck(name string, fn health.CheckFunc) HealthOption {
	return internal.WithReadinessCheck(name, fn)
}

// Run options.

func Address(addr string) RunOption {
	return internal.Address(addr)
}

func Logger(l *slog.Logger) RunOption {
	return internal.Logger(l)
}

func ShutdownTimeout(d time.Duration) RunOption {
	return internal.ShutdownTimeout(d)
}

func ShutdownHook(fn func(context.Context) error) RunOption {
	return internal.ShutdownHook(fn)
}

func WithContext(ctx context.Context) RunOption {
	return internal.WithContext(ctx)
}

func OnReady(fn func(net.Addr)) RunOption {
	return internal.OnReady(fn)
}

// Errors.

func ErrBadRequest(message string, opts ...internal.HTTPErrorOption) *HTTPError {
	return internal.ErrBadRequest(message, opts...)
}

func ErrTooManyRequests(message string, opts ...internal.HTTPErrorOption) *HTTPError {
	return internal.ErrTooManyRequests(message, opts...)
}

func ErrInternal(message string, opts ...internal.HTTPErrorOption) *HTTPError {
	return internal.ErrInternal(message, opts...)
}

func WithErrorCode(code string) internal.HTTPErrorOption {
	return internal.WithErrorCode(code)
}

func AsHTTPError(err error) *HTTPError {
	return internal.AsHTTPError(err)
}

// Extractor sources.

func NewExtractor(sources ...ExtractorSource) Extractor {
	return internal.NewExtractor(sources...)
}

func FromHeader(name string) ExtractorSource {
	return internal.FromHeader(name)
}

func FromForwardedFor() ExtractorSource {
	return internal.FromForwardedFor()
}

func FromRemoteAddr() ExtractorSource {
	return internal.FromRemoteAddr()
}
