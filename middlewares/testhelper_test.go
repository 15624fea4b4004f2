package middlewares_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/sanjamesdev/portfolio/internal"
)

// testContext is a minimal internal.Context for unit-testing middleware
// without building an App.
type testContext struct {
	rw      *internal.ResponseWriter
	request *http.Request
	logger  *slog.Logger
}

func newTestContext(w http.ResponseWriter, r *http.Request) *testContext {
	return &testContext{
		rw:      internal.NewResponseWriter(w),
		request: r,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func (c *testContext) Request() *http.Request                   { return c.request }
func (c *testContext) Response() http.ResponseWriter            { return c.rw }
func (c *testContext) ResponseWriter() *internal.ResponseWriter { return c.rw }
func (c *testContext) Context() context.Context                 { return c.request.Context() }
func (c *testContext) Param(string) string                      { return "" }
func (c *testContext) Query(name string) string                 { return c.request.URL.Query().Get(name) }
func (c *testContext) Header(name string) string                { return c.request.Header.Get(name) }
func (c *testContext) SetHeader(name, value string)             { c.rw.Header().Set(name, value) }
func (c *testContext) RemoteAddr() string                       { return c.request.RemoteAddr }
func (c *testContext) Written() bool                            { return c.rw.Written() }
func (c *testContext) Logger() *slog.Logger                     { return c.logger }
func (c *testContext) LogDebug(msg string, attrs ...any)        { c.logger.Debug(msg, attrs...) }
func (c *testContext) LogInfo(msg string, attrs ...any)         { c.logger.Info(msg, attrs...) }
func (c *testContext) LogWarn(msg string, attrs ...any)         { c.logger.Warn(msg, attrs...) }
func (c *testContext) LogError(msg string, attrs ...any)        { c.logger.Error(msg, attrs...) }

func (c *testContext) Deadline() (time.Time, bool) { return c.request.Context().Deadline() }
func (c *testContext) Done() <-chan struct{}       { return c.request.Context().Done() }
func (c *testContext) Err() error                  { return c.request.Context().Err() }
func (c *testContext) Value(key any) any           { return c.request.Context().Value(key) }

func (c *testContext) JSON(code int, v any) error {
	c.rw.Header().Set("Content-Type", "application/json")
	c.rw.WriteHeader(code)
	return json.NewEncoder(c.rw).Encode(v)
}

func (c *testContext) String(code int, s string) error {
	c.rw.WriteHeader(code)
	_, err := io.WriteString(c.rw, s)
	return err
}

func (c *testContext) NoContent(code int) error {
	c.rw.WriteHeader(code)
	return nil
}

func (c *testContext) Error(code int, message string, opts ...internal.HTTPErrorOption) *internal.HTTPError {
	return internal.NewHTTPError(code, message, opts...)
}

func (c *testContext) BindJSON(v any) error {
	return json.NewDecoder(c.request.Body).Decode(v)
}

func (c *testContext) Set(key, value any) {
	c.request = c.request.WithContext(context.WithValue(c.request.Context(), key, value))
}

func (c *testContext) Get(key any) any {
	return c.request.Context().Value(key)
}

var _ internal.Context = (*testContext)(nil)
