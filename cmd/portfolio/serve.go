package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/sanjamesdev/portfolio"
	"github.com/sanjamesdev/portfolio/config"
	"github.com/sanjamesdev/portfolio/handlers"
	"github.com/sanjamesdev/portfolio/middlewares"
	"github.com/sanjamesdev/portfolio/pkg/cache"
	"github.com/sanjamesdev/portfolio/pkg/contact"
	"github.com/sanjamesdev/portfolio/pkg/logger"
	"github.com/sanjamesdev/portfolio/pkg/mailer"
	"github.com/sanjamesdev/portfolio/pkg/mailer/logsink"
	"github.com/sanjamesdev/portfolio/pkg/mailer/resend"
	"github.com/sanjamesdev/portfolio/pkg/redis"
	"github.com/sanjamesdev/portfolio/web"
)

const (
	sentryFlushTimeout = 2 * time.Second
	logsinkKeep        = 50
	dedupPrefix        = "contact:dedup"
	rateLimitPrefix    = "contact:ratelimit"
)

// ServeCmd runs the HTTP server until SIGINT or SIGTERM.
type ServeCmd struct {
	Address string `name:"address" help:"Listen address, overrides ADDRESS."`
}

func (s *ServeCmd) Run(cli *CLI) error {
	cfg, err := config.Load(cli.EnvFile...)
	if err != nil {
		return err
	}
	if s.Address != "" {
		cfg.Address = s.Address
	}

	log := logger.NewWithSentry(cfg.Logger, cfg.Sentry, middlewares.RequestIDExtractor())

	srv, err := newServer(context.Background(), cfg, log)
	if err != nil {
		log.Error("startup failed", slog.Any("error", err))
		return err
	}

	return srv.app.Run(cfg.Address, srv.runOptions...)
}

// server is the wired application plus what Run needs to stop it cleanly.
type server struct {
	app        *portfolio.App
	sink       *logsink.Sender
	runOptions []portfolio.RunOption
}

// newServer wires storage, mail delivery and routes from cfg.
func newServer(ctx context.Context, cfg *config.Config, log *slog.Logger) (*server, error) {
	srv := &server{}
	var hooks []func(context.Context) error
	var checks []portfolio.HealthOption

	var sender mailer.Sender
	switch cfg.MailerDriver {
	case config.DriverLog:
		srv.sink = logsink.New(log, logsinkKeep)
		sender = srv.sink
		log.Warn("mail driver is log, contact messages will not be delivered")
	default:
		rs := resend.New(cfg.Resend)
		sender = rs
		checks = append(checks, portfolio.WithReadinessCheck("mailer", rs.Healthcheck))
	}

	var (
		counter cache.Counter
		seen    cache.Cache[time.Time]
	)
	if cfg.Redis.Enabled() {
		client, err := redis.Open(ctx, cfg.Redis, redis.WithLogger(log))
		if err != nil {
			return nil, fmt.Errorf("open redis: %w", err)
		}
		counter = cache.NewRedisCounter(client)
		seen = cache.NewRedis[time.Time](client, nil, cache.WithPrefix(dedupPrefix))
		checks = append(checks, portfolio.WithReadinessCheck("redis", redis.Healthcheck(client)))
		hooks = append(hooks, redis.Shutdown(client))
	} else {
		mc := cache.NewMemoryCounter()
		ms := cache.NewMemory[time.Time]()
		counter, seen = mc, ms
		hooks = append(hooks, closer(mc.Close), closer(ms.Close))
	}

	relay, err := contact.NewRelay(sender, cfg.Contact,
		contact.WithLogger(log.With(slog.String("component", "contact"))),
		contact.WithDeduplication(seen),
	)
	if err != nil {
		return nil, fmt.Errorf("contact relay: %w", err)
	}

	contactOpts := []handlers.ContactOption{handlers.WithContactPath(cfg.Contact.Path)}
	if cfg.RateLimit.Enabled() {
		rlOpts := []middlewares.RateLimitOption{middlewares.WithRateLimitKeyPrefix(rateLimitPrefix)}
		if cfg.RateLimit.TrustProxy {
			rlOpts = append(rlOpts, middlewares.WithRateLimitKey(
				portfolio.NewExtractor(portfolio.FromForwardedFor(), portfolio.FromRemoteAddr()),
			))
		}
		contactOpts = append(contactOpts, handlers.WithContactMiddleware(
			middlewares.RateLimit(counter, cfg.RateLimit.Requests, cfg.RateLimit.Window, rlOpts...),
		))
	}

	mw := []portfolio.Middleware{
		middlewares.RequestID(),
		middlewares.RequestLogger(middlewares.WithSkipPaths("/health")),
	}
	if len(cfg.CORSAllowOrigins) > 0 {
		mw = append(mw, middlewares.CORS(middlewares.WithAllowOrigins(cfg.CORSAllowOrigins...)))
	}
	mw = append(mw, middlewares.Timeout(cfg.RequestTimeout))

	site, dir := siteFS(cfg.StaticDir)

	srv.app = portfolio.New(
		portfolio.WithCustomLogger(log),
		portfolio.WithMiddleware(mw...),
		portfolio.WithErrorHandler(handlers.ErrorHandler),
		portfolio.WithNotFoundHandler(handlers.NotFound),
		portfolio.WithMethodNotAllowedHandler(handlers.MethodNotAllowed),
		portfolio.WithHealthChecks(checks...),
		portfolio.WithHandlers(handlers.NewContact(relay, contactOpts...)),
		portfolio.WithStaticFiles("/", site, dir),
	)

	srv.runOptions = []portfolio.RunOption{
		portfolio.Logger(log),
		portfolio.ShutdownTimeout(cfg.ShutdownTimeout),
	}
	for _, hook := range hooks {
		srv.runOptions = append(srv.runOptions, portfolio.ShutdownHook(hook))
	}
	srv.runOptions = append(srv.runOptions, portfolio.ShutdownHook(func(context.Context) error {
		logger.FlushSentry(sentryFlushTimeout)
		return nil
	}))

	return srv, nil
}

// siteFS picks the on-disk page shell when dir is set, the embedded one otherwise.
func siteFS(dir string) (fs.FS, string) {
	if dir != "" {
		return os.DirFS(dir), "."
	}
	return web.FS, web.Dir
}

func closer(fn func() error) func(context.Context) error {
	return func(context.Context) error { return fn() }
}
