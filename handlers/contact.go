package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sanjamesdev/portfolio"
	"github.com/sanjamesdev/portfolio/middlewares"
	"github.com/sanjamesdev/portfolio/pkg/contact"
)

// Response messages of the contact endpoint.
const (
	MsgMissingFields = "Missing required fields"
	MsgSendFailed    = "Failed to send email"
)

// DefaultContactPath is where the contact form posts.
const DefaultContactPath = "/api/contact"

// Relayer delivers a contact submission.
type Relayer interface {
	Relay(ctx context.Context, s contact.Submission) error
}

type successResponse struct {
	Success bool `json:"success"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ContactHandler accepts contact form submissions and relays them by email.
type ContactHandler struct {
	relay      Relayer
	path       string
	middleware []portfolio.Middleware
}

// ContactOption configures a ContactHandler.
type ContactOption func(*ContactHandler)

// WithContactPath overrides DefaultContactPath.
func WithContactPath(path string) ContactOption {
	return func(h *ContactHandler) {
		if path != "" {
			h.path = path
		}
	}
}

// WithContactMiddleware runs mw in front of the contact route.
// Errors returned by mw reach the app's ErrorHandler unchanged,
// so a rate limiter still answers 429.
func WithContactMiddleware(mw ...portfolio.Middleware) ContactOption {
	return func(h *ContactHandler) {
		h.middleware = append(h.middleware, mw...)
	}
}

// NewContact creates a contact handler relaying through relay.
func NewContact(relay Relayer, opts ...ContactOption) *ContactHandler {
	h := &ContactHandler{
		relay: relay,
		path:  DefaultContactPath,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes registers the contact endpoint.
func (h *ContactHandler) Routes(r portfolio.Router) {
	mw := make([]portfolio.Middleware, 0, len(h.middleware)+2)
	mw = append(mw, h.middleware...)
	mw = append(mw, h.failSafe, middlewares.Recover())

	r.POST(h.path, h.submit, mw...)
}

// submit validates and relays one submission.
// Missing fields answer 400; every other failure is left to failSafe.
func (h *ContactHandler) submit(c portfolio.Context) error {
	var s contact.Submission
	if err := c.BindJSON(&s); err != nil {
		return err
	}

	if err := h.relay.Relay(middlewares.GetTimeoutContext(c), s); err != nil {
		if errors.Is(err, contact.ErrMissingFields) {
			c.LogInfo("contact submission rejected", slog.Any("error", err))
			return c.JSON(http.StatusBadRequest, errorResponse{Error: MsgMissingFields})
		}
		return err
	}

	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// failSafe logs any error from the contact route and answers with the
// fixed 500 envelope. Internal details never reach the caller.
func (h *ContactHandler) failSafe(next portfolio.HandlerFunc) portfolio.HandlerFunc {
	return func(c portfolio.Context) error {
		err := next(c)
		if err == nil {
			return nil
		}

		c.LogError("contact form error", slog.Any("error", err))
		if c.Written() {
			return nil
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: MsgSendFailed})
	}
}
