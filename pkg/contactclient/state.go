package contactclient

// Field names one form input.
type Field int

const (
	FieldName Field = iota
	FieldEmail
	FieldSubject
	FieldMessage
)

func (f Field) String() string {
	switch f {
	case FieldName:
		return "name"
	case FieldEmail:
		return "email"
	case FieldSubject:
		return "subject"
	case FieldMessage:
		return "message"
	}
	return "unknown"
}

// ParseField maps a form input name to a Field.
func ParseField(name string) (Field, error) {
	for _, f := range []Field{FieldName, FieldEmail, FieldSubject, FieldMessage} {
		if f.String() == name {
			return f, nil
		}
	}
	return 0, ErrUnknownField
}

// Status is the outcome of the latest submission attempt.
type Status int

const (
	StatusIdle Status = iota
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	}
	return "idle"
}

// Fields is the form content and the JSON payload sent to the relay.
type Fields struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ErrorMessage is shown to the user when a submission fails.
const ErrorMessage = "Something went wrong. Please try again."

// State is what the presentation layer renders.
type State struct {
	Fields  Fields
	Loading bool
	Status  Status
}

// CanSubmit reports whether the submit control should be enabled.
func (s State) CanSubmit() bool {
	return !s.Loading && s.Status != StatusSuccess
}

// ButtonLabel is the submit control caption for this state.
func (s State) ButtonLabel() string {
	switch {
	case s.Loading:
		return "Sending..."
	case s.Status == StatusSuccess:
		return "✓ Message Sent"
	}
	return "➤ Send Message"
}

// Notice is the inline message under the form, empty unless the last
// attempt failed.
func (s State) Notice() string {
	if s.Status == StatusError {
		return ErrorMessage
	}
	return ""
}
