package contact

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
)

// Config describes the fixed parts of every relayed message.
type Config struct {
	FromEmail      string        `env:"CONTACT_FROM_EMAIL" envDefault:"onboarding@resend.dev"`
	FromName       string        `env:"CONTACT_FROM_NAME" envDefault:"Portfolio"`
	To             []string      `env:"CONTACT_TO,required" envSeparator:","`
	DefaultSubject string        `env:"CONTACT_DEFAULT_SUBJECT" envDefault:"New Portfolio Message"`
	SendTimeout    time.Duration `env:"CONTACT_SEND_TIMEOUT" envDefault:"10s"`
	DedupWindow    time.Duration `env:"CONTACT_DEDUP_WINDOW" envDefault:"0s"`
	Path           string        `env:"CONTACT_PATH" envDefault:"/api/contact"`
}

// Validate checks the sender and recipient addresses and the fallback subject.
func (c Config) Validate() error {
	if len(c.To) == 0 {
		return ErrNoRecipients
	}
	if strings.TrimSpace(c.DefaultSubject) == "" {
		return ErrNoDefaultSubject
	}
	for _, addr := range append([]string{c.FromEmail}, c.To...) {
		if _, err := mail.ParseAddress(addr); err != nil {
			return fmt.Errorf("%w: %q: %v", ErrInvalidAddress, addr, err)
		}
	}
	return nil
}

// normalized trims recipient entries and drops empty ones.
func (c Config) normalized() Config {
	to := make([]string, 0, len(c.To))
	for _, addr := range c.To {
		if addr = strings.TrimSpace(addr); addr != "" {
			to = append(to, addr)
		}
	}
	c.To = to
	c.FromEmail = strings.TrimSpace(c.FromEmail)
	return c
}
