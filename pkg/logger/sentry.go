package logger

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// NewWithSentry creates a stdout logger that also reports to Sentry.
// An empty DSN or a failed SDK init leaves a stdout-only logger.
func NewWithSentry(cfg Config, sc SentryConfig, extractors ...ContextExtractor) *slog.Logger {
	stdout := NewHandler(os.Stdout, cfg)

	if sc.DSN == "" {
		return slog.New(NewLogHandlerDecorator(stdout, extractors...))
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         sc.DSN,
		Environment: sc.Environment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(stdout).Error("failed to initialize sentry", slog.String("error", err.Error()))
		return slog.New(NewLogHandlerDecorator(stdout, extractors...))
	}

	sentryHandler := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   sentryLevels(sc.MinLevel),
	}.NewSentryHandler(context.Background())

	return slog.New(NewLogHandlerDecorator(newMultiHandler(stdout, sentryHandler), extractors...))
}

// FlushSentry waits up to timeout for buffered Sentry events.
// It is a no-op when Sentry was never initialised.
func FlushSentry(timeout time.Duration) bool {
	return sentry.Flush(timeout)
}

// sentryLevels lists the standard levels at or above lowest.
func sentryLevels(lowest slog.Level) []slog.Level {
	var levels []slog.Level
	for _, l := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if l >= lowest {
			levels = append(levels, l)
		}
	}
	if len(levels) == 0 {
		levels = []slog.Level{slog.LevelError}
	}
	return levels
}
