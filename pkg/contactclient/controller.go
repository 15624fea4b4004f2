package contactclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/sanjamesdev/portfolio/pkg/logger"
)

const (
	defaultTimeout   = 15 * time.Second
	maxErrorBodySize = 4 << 10
)

// Controller owns the contact form state and submits it to the relay.
// At most one request is in flight; the payload is a snapshot taken when
// Submit starts, so later field edits do not change it.
type Controller struct {
	endpoint string
	client   *http.Client
	logger   *slog.Logger

	// notifyMu orders deliveries so listeners never see an older state
	// after a newer one.
	notifyMu sync.Mutex

	mu        sync.Mutex
	state     State
	gen       uint64
	listeners map[uint64]func(State)
	nextID    uint64
}

// Option configures a Controller.
type Option func(*Controller)

// WithHTTPClient sets the client used for submissions.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Controller) {
		if hc != nil {
			c.client = hc
		}
	}
}

// WithTimeout bounds each submission request.
func WithTimeout(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			hc := *c.client
			hc.Timeout = d
			c.client = &hc
		}
	}
}

// WithLogger sets the controller logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a controller posting to endpoint, e.g.
// "https://example.com/api/contact".
func New(endpoint string, opts ...Option) *Controller {
	c := &Controller{
		endpoint:  endpoint,
		client:    &http.Client{Timeout: defaultTimeout},
		logger:    logger.NewNope(),
		listeners: make(map[uint64]func(State)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a snapshot of the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// CanSubmit reports whether Submit would send a request now, ignoring
// field constraints.
func (c *Controller) CanSubmit() bool {
	return c.State().CanSubmit()
}

// Subscribe registers fn for every state change and returns a function
// that removes it. fn runs on the goroutine that caused the change, one
// delivery at a time, and the last state it sees is the current one.
// fn may read State but must not change the controller synchronously.
func (c *Controller) Subscribe(fn func(State)) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

// UpdateField replaces one field. It is allowed at any time, including
// while a submission is in flight.
func (c *Controller) UpdateField(f Field, value string) error {
	c.mu.Lock()
	switch f {
	case FieldName:
		c.state.Fields.Name = value
	case FieldEmail:
		c.state.Fields.Email = sanitizeEmail(value)
	case FieldSubject:
		c.state.Fields.Subject = value
	case FieldMessage:
		c.state.Fields.Message = value
	default:
		c.mu.Unlock()
		return ErrUnknownField
	}
	c.mu.Unlock()

	c.notify()
	return nil
}

// CheckConstraints validates the current fields the way the form would
// before allowing a submit.
func (c *Controller) CheckConstraints() error {
	return checkConstraints(c.State().Fields)
}

// Submit sends the current fields to the relay and blocks until it answers.
//
// It returns ErrBusy while another submission is in flight, ErrAlreadySent
// after a successful one, and an ErrConstraint error for invalid fields;
// none of these change state. Otherwise the status ends as StatusSuccess
// with cleared fields, or as StatusError with the fields kept and an
// ErrSubmitFailed error returned.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	switch {
	case c.state.Loading:
		c.mu.Unlock()
		return ErrBusy
	case c.state.Status == StatusSuccess:
		c.mu.Unlock()
		return ErrAlreadySent
	}
	if err := checkConstraints(c.state.Fields); err != nil {
		c.mu.Unlock()
		return err
	}

	c.state.Loading = true
	c.state.Status = StatusIdle
	payload := c.state.Fields
	gen := c.gen
	c.mu.Unlock()
	c.notify()

	err := c.post(ctx, payload)

	c.mu.Lock()
	if c.gen != gen {
		// Reset happened while the request was in flight.
		c.mu.Unlock()
		c.logger.DebugContext(ctx, "discarding outcome of abandoned submission", slog.Any("error", err))
		return err
	}
	c.state.Loading = false
	if err == nil {
		c.state.Status = StatusSuccess
		c.state.Fields = Fields{}
	} else {
		c.state.Status = StatusError
	}
	c.mu.Unlock()
	c.notify()

	if err != nil {
		c.logger.WarnContext(ctx, "contact submission failed", slog.Any("error", err))
		return err
	}
	return nil
}

// Reset returns to a fresh form. The outcome of an in-flight submission
// is discarded.
func (c *Controller) Reset() {
	c.mu.Lock()
	c.state = State{}
	c.gen++
	c.mu.Unlock()
	c.notify()
}

func (c *Controller) post(ctx context.Context, payload Fields) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Join(ErrSubmitFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Join(ErrSubmitFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.Join(ErrSubmitFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	var envelope struct {
		Error string `json:"error"`
	}
	_ = json.NewDecoder(io.LimitReader(resp.Body, maxErrorBodySize)).Decode(&envelope)
	return errors.Join(ErrSubmitFailed, &ResponseError{StatusCode: resp.StatusCode, Message: envelope.Error})
}

func (c *Controller) notify() {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	c.mu.Lock()
	st := c.state
	fns := make([]func(State), 0, len(c.listeners))
	for _, fn := range c.listeners {
		fns = append(fns, fn)
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn(st)
	}
}
