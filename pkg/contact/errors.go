package contact

import "errors"

var (
	// ErrMissingFields means name, email or message was empty.
	ErrMissingFields = errors.New("contact: missing required fields")

	// ErrDelivery means the message could not be handed to the provider.
	ErrDelivery = errors.New("contact: delivery failed")

	// ErrNoRecipients means the relay has nowhere to send messages.
	ErrNoRecipients = errors.New("contact: no recipients configured")

	// ErrNoDefaultSubject means submissions without a subject would go out blank.
	ErrNoDefaultSubject = errors.New("contact: no default subject configured")

	// ErrInvalidAddress means a configured address does not parse.
	ErrInvalidAddress = errors.New("contact: invalid address")
)
