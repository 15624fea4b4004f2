package internal

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// httpServer runs one listener for the lifetime of App.Run.
type httpServer struct {
	srv   *http.Server
	log   *slog.Logger
	drain time.Duration
	hooks []func(context.Context) error
}

func newHTTPServer(handler http.Handler, cfg *runConfig) *httpServer {
	log := cfg.logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	drain := cfg.shutdownTimeout
	if drain <= 0 {
		drain = defaultShutdownTimeout
	}

	return &httpServer{
		srv: &http.Server{
			Handler:           handler,
			ReadTimeout:       defaultReadTimeout,
			ReadHeaderTimeout: defaultReadHeaderTimeout,
			WriteTimeout:      defaultWriteTimeout,
			IdleTimeout:       defaultIdleTimeout,
			MaxHeaderBytes:    defaultMaxHeaderBytes,
			ErrorLog:          slog.NewLogLogger(log.Handler(), slog.LevelWarn),
		},
		log:   log,
		drain: drain,
		hooks: cfg.shutdownHooks,
	}
}

// run binds addr, reports the bound address to ready and serves until
// parent is done or the process gets SIGINT/SIGTERM. A serve failure
// returns at once; a stop signal drains through shutdown.
func (s *httpServer) run(parent context.Context, addr string, ready func(net.Addr)) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.srv.Addr = ln.Addr().String()
	if ready != nil {
		ready(ln.Addr())
	}

	served := make(chan error, 1)
	go func() {
		s.log.Info("server starting", slog.String("address", s.srv.Addr))
		served <- s.srv.Serve(ln)
	}()

	select {
	case err := <-served:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		return s.shutdown()
	}
}

// shutdown drains connections and then runs every hook, all within one
// drain window. Hook failures do not stop later hooks.
func (s *httpServer) shutdown() error {
	s.log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), s.drain)
	defer cancel()

	errs := []error{s.srv.Shutdown(ctx)}
	for _, hook := range s.hooks {
		if err := hook(ctx); err != nil {
			s.log.Error("shutdown hook failed", slog.Any("error", err))
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		s.log.Error("shutdown completed with errors", slog.Any("error", err))
		return err
	}
	s.log.Info("shutdown completed")
	return nil
}
