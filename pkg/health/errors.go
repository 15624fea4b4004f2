package health

import "errors"

var (
	// ErrCheckFailed wraps a check that panicked.
	ErrCheckFailed = errors.New("health: check failed")

	// ErrCheckTimeout is reported for a check still running at the deadline.
	ErrCheckTimeout = errors.New("health: check timeout")
)
