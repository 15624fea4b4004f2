package resend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/resend/resend-go/v3"

	"github.com/sanjamesdev/portfolio/pkg/mailer"
)

// Sender delivers mail through the Resend HTTP API.
type Sender struct {
	client *resend.Client
	config Config
}

// Option configures a Sender.
type Option func(*Sender)

// WithHTTPClient replaces the HTTP client used for API calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(s *Sender) {
		if hc != nil {
			base := s.client.BaseURL
			s.client = resend.NewCustomClient(hc, s.config.APIKey)
			s.client.BaseURL = base
		}
	}
}

// WithBaseURL points the client at another API host.
func WithBaseURL(u *url.URL) Option {
	return func(s *Sender) {
		if u != nil {
			s.client.BaseURL = u
		}
	}
}

// New creates a Resend sender.
func New(cfg Config, opts ...Option) *Sender {
	s := &Sender{
		client: resend.NewClient(cfg.APIKey),
		config: cfg,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Send implements mailer.Sender. An empty From uses the configured sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	from := email.From
	if from == "" {
		from = mailer.Recipient(s.config.SenderName, s.config.SenderEmail)
	}

	req := &resend.SendEmailRequest{
		From:    from,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
		ReplyTo: email.ReplyTo,
	}
	if len(email.Tags) > 0 {
		req.Tags = tags(email.Tags)
	}

	if _, err := s.client.Emails.SendWithContext(ctx, req); err != nil {
		return fmt.Errorf("resend: send email: %w", err)
	}
	return nil
}

// Healthcheck fails when the API key is missing. It makes no network call.
func (s *Sender) Healthcheck(context.Context) error {
	if s.config.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

func tags(in mailer.Tags) []resend.Tag {
	out := make([]resend.Tag, 0, len(in))
	for name, v := range in {
		out = append(out, resend.Tag{Name: name, Value: v})
	}
	return out
}
