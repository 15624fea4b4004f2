package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/sanjamesdev/portfolio/pkg/contactclient"
	"github.com/sanjamesdev/portfolio/pkg/logger"
)

// SendCmd fills the contact form and submits it like the browser would.
type SendCmd struct {
	Endpoint string        `name:"endpoint" help:"Contact endpoint URL." env:"CONTACT_ENDPOINT" default:"http://localhost:8080/api/contact"`
	Name     string        `name:"name" help:"Sender name." required:""`
	Email    string        `name:"email" help:"Sender email address." required:""`
	Subject  string        `name:"subject" help:"Optional subject line."`
	Message  string        `name:"message" help:"Message body." required:""`
	Timeout  time.Duration `name:"timeout" help:"Request timeout." default:"15s"`
	LogLevel slog.Level    `name:"log-level" help:"Log level." default:"WARN" enum:"DEBUG,INFO,WARN,ERROR"`
}

func (s *SendCmd) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log := logger.NewWithConfig(logger.Config{Level: s.LogLevel, Format: logger.FormatAuto})
	ctl := contactclient.New(s.Endpoint,
		contactclient.WithTimeout(s.Timeout),
		contactclient.WithLogger(log),
	)
	return s.submit(ctx, ctl, os.Stdout)
}

func (s *SendCmd) submit(ctx context.Context, ctl *contactclient.Controller, out io.Writer) error {
	unsubscribe := ctl.Subscribe(func(st contactclient.State) {
		if st.Loading {
			fmt.Fprintln(out, st.ButtonLabel())
		}
	})
	defer unsubscribe()

	values := map[contactclient.Field]string{
		contactclient.FieldName:    s.Name,
		contactclient.FieldEmail:   s.Email,
		contactclient.FieldSubject: s.Subject,
		contactclient.FieldMessage: s.Message,
	}
	for field, value := range values {
		if err := ctl.UpdateField(field, value); err != nil {
			return err
		}
	}

	if err := ctl.Submit(ctx); err != nil {
		if notice := ctl.State().Notice(); notice != "" {
			fmt.Fprintln(out, notice)
		}
		return err
	}

	fmt.Fprintln(out, ctl.State().ButtonLabel())
	return nil
}
