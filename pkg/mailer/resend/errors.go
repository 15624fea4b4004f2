package resend

import "errors"

// ErrMissingAPIKey is reported by Healthcheck when no key is configured.
var ErrMissingAPIKey = errors.New("resend: api key is not set")
