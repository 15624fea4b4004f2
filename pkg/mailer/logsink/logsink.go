// Package logsink is a mailer.Sender that logs messages instead of sending
// them. It is meant for local runs without provider credentials.
package logsink

import (
	"context"
	"log/slog"
	"sync"

	"github.com/sanjamesdev/portfolio/pkg/mailer"
)

// Sender logs each Email and keeps the most recent ones in memory.
type Sender struct {
	logger *slog.Logger
	keep   int

	mu   sync.Mutex
	sent []mailer.Email
}

// New creates a Sender that retains up to keep messages for Sent.
func New(logger *slog.Logger, keep int) *Sender {
	return &Sender{
		logger: logger.With(slog.String("component", "mail_logsink")),
		keep:   keep,
	}
}

// Send logs the envelope and a plain-text preview. It never fails unless
// ctx is already done.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "email captured",
		slog.Any("to", email.To),
		slog.String("reply_to", email.ReplyTo),
		slog.String("subject", email.Subject),
		slog.String("text", email.Text),
	)

	if s.keep > 0 {
		s.mu.Lock()
		s.sent = append(s.sent, *email)
		if over := len(s.sent) - s.keep; over > 0 {
			s.sent = s.sent[over:]
		}
		s.mu.Unlock()
	}
	return nil
}

// Sent returns a copy of the retained messages, oldest first.
func (s *Sender) Sent() []mailer.Email {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]mailer.Email(nil), s.sent...)
}

// Healthcheck always succeeds.
func (s *Sender) Healthcheck(context.Context) error { return nil }
