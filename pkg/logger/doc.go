// Package logger builds the process-wide *slog.Logger.
//
// Output is JSON unless stdout is a terminal, in which case records are
// rendered by tint in colour. LOG_FORMAT forces either encoding.
//
// Context extractors add request-scoped attributes to every record:
//
//	log := logger.NewWithConfig(cfg, middlewares.RequestIDExtractor())
//	log.InfoContext(ctx, "contact relayed")
//	// {"level":"INFO","msg":"contact relayed","request_id":"0190..."}
//
// NewWithSentry additionally forwards warnings and errors to Sentry when
// SENTRY_DSN is set; call FlushSentry before exit.
package logger
