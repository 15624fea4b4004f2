package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"github.com/sanjamesdev/portfolio/pkg/contact"
	"github.com/sanjamesdev/portfolio/pkg/logger"
	"github.com/sanjamesdev/portfolio/pkg/mailer/resend"
	"github.com/sanjamesdev/portfolio/pkg/redis"
)

// Mail drivers accepted by MAILER_DRIVER.
const (
	DriverResend = "resend"
	DriverLog    = "log"
)

// Config is the full process configuration, read from the environment.
type Config struct {
	Address          string        `env:"ADDRESS" envDefault:":8080"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
	RequestTimeout   time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	StaticDir        string        `env:"STATIC_DIR"`
	CORSAllowOrigins []string      `env:"CORS_ALLOW_ORIGINS" envSeparator:","`
	MailerDriver     string        `env:"MAILER_DRIVER" envDefault:"resend"`

	RateLimit RateLimitConfig
	Logger    logger.Config
	Sentry    logger.SentryConfig
	Resend    resend.Config
	Contact   contact.Config
	Redis     redis.Config
}

// RateLimitConfig limits contact submissions per client. Zero requests
// disables the limiter.
type RateLimitConfig struct {
	Requests   int           `env:"RATE_LIMIT_REQUESTS" envDefault:"0"`
	Window     time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`
	TrustProxy bool          `env:"RATE_LIMIT_TRUST_PROXY" envDefault:"false"`
}

// Enabled reports whether the limiter should be installed.
func (c RateLimitConfig) Enabled() bool {
	return c.Requests > 0 && c.Window > 0
}

// Load reads the given .env files (".env" when none are named) into the
// process environment, then parses and validates the configuration.
// Missing .env files are not an error.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}
	return Parse()
}

// Parse reads the configuration from the process environment.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints env tags cannot express.
func (c *Config) Validate() error {
	switch c.MailerDriver {
	case DriverResend:
		if c.Resend.APIKey == "" {
			return errors.Join(ErrInvalidConfig, resend.ErrMissingAPIKey)
		}
	case DriverLog:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, c.MailerDriver)
	}

	if err := c.Contact.Validate(); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("%w: REQUEST_TIMEOUT must be positive", ErrInvalidConfig)
	}
	// The relay must give up before the request does, or the route
	// answers with a bare timeout instead of its own error envelope.
	if c.Contact.SendTimeout <= 0 || c.Contact.SendTimeout >= c.RequestTimeout {
		return fmt.Errorf("%w: CONTACT_SEND_TIMEOUT must be positive and below REQUEST_TIMEOUT", ErrInvalidConfig)
	}
	if c.RateLimit.Requests < 0 {
		return fmt.Errorf("%w: RATE_LIMIT_REQUESTS must not be negative", ErrInvalidConfig)
	}
	return nil
}
