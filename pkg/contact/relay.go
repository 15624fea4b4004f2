package contact

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/sanjamesdev/portfolio/pkg/cache"
	"github.com/sanjamesdev/portfolio/pkg/logger"
	"github.com/sanjamesdev/portfolio/pkg/mailer"
)

// Relay turns submissions into notification emails for the site owner.
// It keeps no state between calls unless deduplication is enabled.
type Relay struct {
	mailer *mailer.Mailer
	cfg    Config
	from   string
	seen   cache.Cache[time.Time]
	logger *slog.Logger
	now    func() time.Time
}

// Option configures a Relay.
type Option func(*Relay)

// WithDeduplication acknowledges repeats of the same message within
// Config.DedupWindow without sending them again.
func WithDeduplication(seen cache.Cache[time.Time]) Option {
	return func(r *Relay) {
		r.seen = seen
	}
}

// WithLogger sets the relay logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Relay) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRelay creates a relay delivering through sender.
func NewRelay(sender mailer.Sender, cfg Config, opts ...Option) (*Relay, error) {
	cfg = cfg.normalized()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	renderer := mailer.NewRendererWithConfig(templates, mailer.RendererConfig{
		TemplateDir: templateDir,
		LayoutDir:   layoutDir,
	})

	r := &Relay{
		mailer: mailer.New(sender, renderer, mailer.Config{
			DefaultLayout:   notificationLayout,
			FallbackSubject: cfg.DefaultSubject,
		}),
		cfg:    cfg,
		from:   mailer.Recipient(cfg.FromName, cfg.FromEmail),
		logger: logger.NewNope(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	if cfg.DedupWindow <= 0 {
		r.seen = nil
	}
	return r, nil
}

// Envelope builds the notification for s. Reply-To is always the
// submitter so the owner can answer directly. A non-empty subject is used
// exactly as given.
func (r *Relay) Envelope(s Submission) (*mailer.Email, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	subject := s.Subject
	if subject == "" {
		subject = r.cfg.DefaultSubject
	}

	return r.mailer.Compose(mailer.SendParams{
		Template: notificationTemplate,
		Data:     s,
		Subject:  subject,
		From:     r.from,
		ReplyTo:  s.Email,
		To:       r.cfg.To,
		Tags:     mailer.Tags{"source": "portfolio_contact"},
	})
}

// Relay validates s and sends exactly one notification. It returns
// ErrMissingFields without contacting the provider, or ErrDelivery joined
// with the cause when building or sending fails. Nothing is retried.
func (r *Relay) Relay(ctx context.Context, s Submission) error {
	email, err := r.Envelope(s)
	if err != nil {
		if errors.Is(err, ErrMissingFields) {
			return err
		}
		return errors.Join(ErrDelivery, err)
	}

	key, duplicate := r.claim(ctx, s)
	if duplicate {
		r.logger.InfoContext(ctx, "duplicate contact message suppressed", slog.String("reply_to", s.Email))
		return nil
	}

	sendCtx := ctx
	if r.cfg.SendTimeout > 0 {
		var cancel context.CancelFunc
		sendCtx, cancel = context.WithTimeout(ctx, r.cfg.SendTimeout)
		defer cancel()
	}

	if err := r.mailer.SendRaw(sendCtx, email); err != nil {
		r.release(ctx, key)
		return errors.Join(ErrDelivery, err)
	}

	r.logger.InfoContext(ctx, "contact message relayed",
		slog.String("reply_to", s.Email),
		slog.Int("recipients", len(email.To)),
	)
	return nil
}

// claim records s in the dedup cache. It reports true when s was already
// seen inside the window. Cache errors let the message through.
func (r *Relay) claim(ctx context.Context, s Submission) (string, bool) {
	if r.seen == nil {
		return "", false
	}

	key := s.fingerprint()
	added, err := r.seen.Add(ctx, key, r.now(), r.cfg.DedupWindow)
	if err != nil {
		r.logger.WarnContext(ctx, "dedup cache unavailable", slog.Any("error", err))
		return "", false
	}
	if !added {
		return key, true
	}
	return key, false
}

// release forgets a claim so a failed send can be retried by the user.
func (r *Relay) release(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := r.seen.Delete(context.WithoutCancel(ctx), key); err != nil {
		r.logger.WarnContext(ctx, "dedup release failed", slog.Any("error", err))
	}
}
