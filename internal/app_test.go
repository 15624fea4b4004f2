package internal_test

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sanjamesdev/portfolio/internal"
)

type routesFunc func(r internal.Router)

func (f routesFunc) Routes(r internal.Router) { f(r) }

func TestApp_RouteMiddlewareOrder(t *testing.T) {
	t.Parallel()

	var order []string
	mark := func(name string) internal.Middleware {
		return func(next internal.HandlerFunc) internal.HandlerFunc {
			return func(c internal.Context) error {
				order = append(order, name)
				return next(c)
			}
		}
	}

	app := internal.New(
		internal.WithMiddleware(mark("global")),
		internal.WithHandlers(routesFunc(func(r internal.Router) {
			r.GET("/", func(c internal.Context) error {
				order = append(order, "handler")
				return c.String(http.StatusOK, "ok")
			}, mark("first"), mark("second"))
		})),
	)

	w := httptest.NewRecorder()
	app.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, []string{"global", "first", "second", "handler"}, order)
}

func TestApp_ErrorHandler(t *testing.T) {
	t.Parallel()

	t.Run("renders returned error", func(t *testing.T) {
		t.Parallel()

		app := internal.New(
			internal.WithErrorHandler(func(c internal.Context, err error) error {
				if httpErr := internal.AsHTTPError(err); httpErr != nil {
					return c.JSON(httpErr.Code, map[string]string{"error": httpErr.Message})
				}
				return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal"})
			}),
			internal.WithHandlers(routesFunc(func(r internal.Router) {
				r.GET("/", func(c internal.Context) error {
					return c.Error(http.StatusTeapot, "short and stout")
				})
			})),
		)

		w := httptest.NewRecorder()
		app.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusTeapot, w.Code)
		require.JSONEq(t, `{"error":"short and stout"}`, w.Body.String())
	})

	t.Run("skipped once response is written", func(t *testing.T) {
		t.Parallel()

		called := false
		app := internal.New(
			internal.WithErrorHandler(func(c internal.Context, err error) error {
				called = true
				return nil
			}),
			internal.WithHandlers(routesFunc(func(r internal.Router) {
				r.GET("/", func(c internal.Context) error {
					_ = c.String(http.StatusAccepted, "done")
					return errors.New("late failure")
				})
			})),
		)

		w := httptest.NewRecorder()
		app.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.False(t, called)
		require.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("falls back to plain 500", func(t *testing.T) {
		t.Parallel()

		app := internal.New(internal.WithHandlers(routesFunc(func(r internal.Router) {
			r.GET("/", func(c internal.Context) error {
				return errors.New("boom")
			})
		})))

		w := httptest.NewRecorder()
		app.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestContext_BindJSON(t *testing.T) {
	t.Parallel()

	type payload struct {
		Name string `json:"name"`
	}

	serve := func(t *testing.T, body io.Reader, opts ...internal.Option) (payload, error) {
		t.Helper()

		var (
			got     payload
			bindErr error
		)
		req := httptest.NewRequest(http.MethodGet, "/", body)
		requestVia(t, req, opts, func(c internal.Context) {
			bindErr = c.BindJSON(&got)
		})
		return got, bindErr
	}

	t.Run("decodes body", func(t *testing.T) {
		t.Parallel()

		got, err := serve(t, strings.NewReader(`{"name":"Ada","extra":true}`))
		require.NoError(t, err)
		require.Equal(t, "Ada", got.Name)
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()

		_, err := serve(t, nil)
		require.ErrorIs(t, err, internal.ErrEmptyBody)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		_, err := serve(t, strings.NewReader(`{"name":`))
		require.Error(t, err)
		require.NotErrorIs(t, err, internal.ErrEmptyBody)
	})

	t.Run("oversized body", func(t *testing.T) {
		t.Parallel()

		big := `{"name":"` + strings.Repeat("a", 2048) + `"}`
		_, err := serve(t, strings.NewReader(big), internal.WithMaxBodyBytes(512))

		var maxErr *http.MaxBytesError
		require.ErrorAs(t, err, &maxErr)
	})
}

func TestApp_StaticFiles(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"public/index.html": {Data: []byte("<h1>portfolio</h1>")},
		"public/app.js":     {Data: []byte("console.log(1)")},
	}

	app := internal.New(
		internal.WithHandlers(routesFunc(func(r internal.Router) {
			r.POST("/api/contact", func(c internal.Context) error {
				return c.NoContent(http.StatusNoContent)
			})
		})),
		internal.WithStaticFiles("/", fsys, "public"),
	)

	t.Run("index", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		app.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "portfolio")
		require.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	})

	t.Run("asset", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		app.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/app.js", nil))
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("api route not shadowed", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		app.Router().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/contact", nil))
		require.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestApp_HealthChecks(t *testing.T) {
	t.Parallel()

	app := internal.New(internal.WithHealthChecks(
		internal.WithReadinessCheck("redis", func(ctx context.Context) error {
			return errors.New("connection refused")
		}),
	))

	w := httptest.NewRecorder()
	app.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	app.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestApp_Run(t *testing.T) {
	t.Parallel()

	app := internal.New(internal.WithHandlers(routesFunc(func(r internal.Router) {
		r.GET("/ping", func(c internal.Context) error {
			return c.String(http.StatusOK, "pong")
		})
	})))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	addrCh := make(chan net.Addr, 1)
	hookRan := make(chan struct{})
	errCh := make(chan error, 1)

	go func() {
		errCh <- app.Run("127.0.0.1:0",
			internal.WithContext(ctx),
			internal.OnReady(func(a net.Addr) { addrCh <- a }),
			internal.ShutdownTimeout(2*time.Second),
			internal.ShutdownHook(func(context.Context) error {
				close(hookRan)
				return nil
			}),
		)
	}()

	var addr net.Addr
	select {
	case addr = <-addrCh:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start")
	}

	resp, err := http.Get("http://" + addr.String() + "/ping")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	require.Equal(t, "pong", string(body))

	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	select {
	case <-hookRan:
	default:
		t.Fatal("shutdown hook not called")
	}
}

func TestApp_RunShutdownErrors(t *testing.T) {
	t.Parallel()

	app := internal.New()

	ctx, cancel := context.WithCancel(context.Background())
	hookErr := errors.New("flush failed")
	var order []string

	time.AfterFunc(50*time.Millisecond, cancel)

	err := app.Run("127.0.0.1:0",
		internal.WithContext(ctx),
		internal.ShutdownHook(func(context.Context) error {
			order = append(order, "first")
			return hookErr
		}),
		internal.ShutdownHook(func(context.Context) error {
			order = append(order, "second")
			return nil
		}),
	)

	require.ErrorIs(t, err, hookErr)
	require.Equal(t, []string{"first", "second"}, order)
}

func TestApp_RunListenError(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	err = internal.New().Run(ln.Addr().String())
	require.Error(t, err)
}
