package mailer

import "net/mail"

// Tags label a message for provider-side filtering.
type Tags map[string]string

// Recipient formats an RFC 5322 address, quoting the display name when needed.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return (&mail.Address{Name: name, Address: email}).String()
}

// Email is a message ready for a Sender.
type Email struct {
	Tags    Tags
	Subject string
	HTML    string
	Text    string // plain-text alternative
	From    string // empty means the provider default
	ReplyTo string
	To      []string
}

// Validate reports the first missing required part.
func (e *Email) Validate() error {
	switch {
	case len(e.To) == 0:
		return ErrNoRecipient
	case e.Subject == "":
		return ErrNoSubject
	case e.HTML == "":
		return ErrNoContent
	}
	return nil
}
