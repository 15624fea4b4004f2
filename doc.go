// Package portfolio serves a single-page portfolio site and its contact form
// relay.
//
// The root package is a thin facade over internal: it re-exports the
// application types so handlers and middleware only import this package.
//
// # Application
//
//	app := portfolio.New(
//	    portfolio.WithCustomLogger(log),
//	    portfolio.WithMiddleware(
//	        middlewares.RequestID(),
//	        middlewares.RequestLogger(),
//	    ),
//	    portfolio.WithHandlers(handlers.NewContact(relay)),
//	    portfolio.WithStaticFiles("/", web.FS, "public"),
//	    portfolio.WithHealthChecks(),
//	)
//
//	if err := app.Run(cfg.Address, portfolio.Logger(log)); err != nil {
//	    log.Error("server stopped", "error", err)
//	}
//
// # Handlers
//
// Handlers implement [Handler] and declare their routes:
//
//	func (h *ContactHandler) Routes(r portfolio.Router) {
//	    r.POST("/api/contact", h.submit)
//	}
//
// Route handlers return errors. A non-nil error is passed to the
// [ErrorHandler] configured with [WithErrorHandler] unless the handler has
// already written a response.
//
// # Shutdown
//
// Run blocks until SIGINT, SIGTERM or cancellation of the context given to
// [WithContext]. In-flight requests are drained, then hooks registered with
// [ShutdownHook] run in order, all bounded by [ShutdownTimeout].
package portfolio
