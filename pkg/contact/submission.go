package contact

import (
	"crypto/sha256"
	"encoding/hex"
)

// Submission is one contact form post. It is never stored.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Validate requires name, email and message. Values are not trimmed, so
// whitespace counts as present; subject is optional.
func (s Submission) Validate() error {
	if s.Name == "" || s.Email == "" || s.Message == "" {
		return ErrMissingFields
	}
	return nil
}

// fingerprint identifies a repeated post of the same message.
func (s Submission) fingerprint() string {
	h := sha256.New()
	for _, part := range []string{s.Email, s.Subject, s.Message} {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
