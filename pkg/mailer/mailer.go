package mailer

import (
	"bytes"
	"context"
	"errors"
	texttemplate "text/template"
)

// Mailer renders templates into Emails and hands them to a Sender.
type Mailer struct {
	sender   Sender
	renderer *Renderer
	config   Config
}

// New creates a Mailer.
func New(sender Sender, renderer *Renderer, cfg Config) *Mailer {
	return &Mailer{sender: sender, renderer: renderer, config: cfg}
}

// SendParams describes one templated message.
type SendParams struct {
	Data     any
	Tags     Tags
	Template string // file name, e.g. "notification.md"
	Layout   string // defaults to Config.DefaultLayout

	// Subject is used verbatim when set. Otherwise the template's
	// Subject frontmatter is executed against Data, then the fallback.
	Subject string

	From    string
	ReplyTo string
	To      []string
}

// Compose renders params into an Email without sending it.
func (m *Mailer) Compose(params SendParams) (*Email, error) {
	if len(params.To) == 0 {
		return nil, ErrNoRecipient
	}

	layout := params.Layout
	if layout == "" {
		layout = m.config.DefaultLayout
	}

	result, err := m.renderer.Render(layout, params.Template, params.Data)
	if err != nil {
		return nil, err
	}

	subject := params.Subject
	if subject == "" {
		subject, err = m.templateSubject(result.Metadata, params.Data)
		if err != nil {
			return nil, errors.Join(ErrRenderFailed, err)
		}
	}

	email := &Email{
		Tags:    params.Tags,
		Subject: subject,
		HTML:    result.HTML,
		Text:    result.Text,
		From:    params.From,
		ReplyTo: params.ReplyTo,
		To:      params.To,
	}
	if err := email.Validate(); err != nil {
		return nil, err
	}
	return email, nil
}

// SendRaw validates and sends a prepared Email.
func (m *Mailer) SendRaw(ctx context.Context, email *Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	if err := m.sender.Send(ctx, email); err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	return nil
}

func (m *Mailer) templateSubject(meta map[string]any, data any) (string, error) {
	raw, ok := meta["Subject"].(string)
	if !ok || raw == "" {
		return m.config.FallbackSubject, nil
	}

	tmpl, err := texttemplate.New("subject").Parse(raw)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
