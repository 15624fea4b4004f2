package contactclient

import (
	"errors"
	"fmt"
)

var (
	// ErrBusy means a submission is already in flight.
	ErrBusy = errors.New("contactclient: submission in progress")

	// ErrAlreadySent means the form was accepted and has not been reset.
	ErrAlreadySent = errors.New("contactclient: message already sent")

	// ErrConstraint means the fields fail the form's input constraints.
	ErrConstraint = errors.New("contactclient: constraint violated")

	// ErrUnknownField means a Field value outside the defined set.
	ErrUnknownField = errors.New("contactclient: unknown field")

	// ErrSubmitFailed means the relay did not accept the message.
	ErrSubmitFailed = errors.New("contactclient: submission failed")
)

// ResponseError is a non-2xx answer from the relay.
type ResponseError struct {
	StatusCode int
	Message    string // the "error" member of the body, if any
}

func (e *ResponseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("relay responded %d", e.StatusCode)
	}
	return fmt.Sprintf("relay responded %d: %s", e.StatusCode, e.Message)
}
