package config

import "errors"

var (
	ErrInvalidConfig = errors.New("config: invalid configuration")
	ErrUnknownDriver = errors.New("config: unknown mailer driver")
)
