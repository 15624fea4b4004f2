// Package config loads the process configuration from environment
// variables, optionally seeded from a .env file.
//
// Required variables:
//
//	CONTACT_TO       comma-separated recipients of contact messages
//	RESEND_API_KEY   unless MAILER_DRIVER=log
package config
