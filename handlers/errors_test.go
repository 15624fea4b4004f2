package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sanjamesdev/portfolio"
	"github.com/sanjamesdev/portfolio/handlers"
	"github.com/sanjamesdev/portfolio/middlewares"
)

type routesFunc func(r portfolio.Router)

func (f routesFunc) Routes(r portfolio.Router) { f(r) }

func TestErrorHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{
			name:   "http error message is shown",
			err:    portfolio.ErrBadRequest("bad input", portfolio.WithErrorCode("bad_input")),
			status: http.StatusBadRequest,
			body:   `{"error":"bad input","code":"bad_input","request_id":"req-1"}`,
		},
		{
			name:   "rate limit",
			err:    &middlewares.RateLimitError{Key: "198.51.100.1", Limit: 5, RetryAfter: time.Minute},
			status: http.StatusTooManyRequests,
			body:   `{"error":"Too Many Requests","request_id":"req-1"}`,
		},
		{
			name:   "timeout",
			err:    &middlewares.TimeoutError{Duration: time.Second},
			status: http.StatusServiceUnavailable,
			body:   `{"error":"Service Unavailable","request_id":"req-1"}`,
		},
		{
			name:   "unknown error hides details",
			err:    errors.New("redis: connection refused"),
			status: http.StatusInternalServerError,
			body:   `{"error":"Internal Server Error","request_id":"req-1"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			app := portfolio.New(
				portfolio.WithMiddleware(middlewares.RequestID()),
				portfolio.WithErrorHandler(handlers.ErrorHandler),
				portfolio.WithHandlers(routesFunc(func(r portfolio.Router) {
					r.GET("/fail", func(portfolio.Context) error { return tt.err })
				})),
			)

			req := httptest.NewRequest(http.MethodGet, "/fail", nil)
			req.Header.Set("X-Request-ID", "req-1")
			rec := httptest.NewRecorder()
			app.Router().ServeHTTP(rec, req)

			require.Equal(t, tt.status, rec.Code)
			require.JSONEq(t, tt.body, rec.Body.String())
		})
	}
}

func TestNotFound(t *testing.T) {
	t.Parallel()

	app := portfolio.New(portfolio.WithNotFoundHandler(handlers.NotFound))

	rec := httptest.NewRecorder()
	app.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"error":"Not Found"}`, rec.Body.String())
}
