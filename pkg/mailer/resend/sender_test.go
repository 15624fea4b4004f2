package resend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sanjamesdev/portfolio/pkg/mailer"
	"github.com/sanjamesdev/portfolio/pkg/mailer/resend"
)

func newServer(t *testing.T, status int, captured *map[string]any) *url.URL {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/emails", r.URL.Path)
		require.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		if captured != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(captured))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status == http.StatusOK {
			_, _ = w.Write([]byte(`{"id":"49a3999c-0ce1-4ea6-ab68-afcd6dc2e794"}`))
			return
		}
		_, _ = w.Write([]byte(`{"statusCode":500,"name":"application_error","message":"boom"}`))
	}))
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	return u
}

func TestSender_Send(t *testing.T) {
	t.Parallel()

	t.Run("maps email fields", func(t *testing.T) {
		t.Parallel()

		var body map[string]any
		base := newServer(t, http.StatusOK, &body)

		s := resend.New(resend.Config{APIKey: "re_test", SenderEmail: "onboarding@resend.dev", SenderName: "Portfolio"},
			resend.WithBaseURL(base))

		err := s.Send(context.Background(), &mailer.Email{
			To:      []string{"owner@example.com"},
			ReplyTo: "ada@example.com",
			Subject: "Hi",
			HTML:    "<p>Hello</p>",
			Text:    "Hello",
			Tags:    mailer.Tags{"source": "portfolio_contact"},
		})
		require.NoError(t, err)

		require.Equal(t, `"Portfolio" <onboarding@resend.dev>`, body["from"])
		require.Equal(t, []any{"owner@example.com"}, body["to"])
		require.Equal(t, "Hi", body["subject"])
		require.Equal(t, "<p>Hello</p>", body["html"])
		require.Equal(t, []any{map[string]any{"name": "source", "value": "portfolio_contact"}}, body["tags"])
	})

	t.Run("provider error surfaces", func(t *testing.T) {
		t.Parallel()

		base := newServer(t, http.StatusInternalServerError, nil)
		s := resend.New(resend.Config{APIKey: "re_test", SenderEmail: "a@example.com"}, resend.WithBaseURL(base))

		err := s.Send(context.Background(), &mailer.Email{To: []string{"b@example.com"}, Subject: "x", HTML: "y"})
		require.Error(t, err)
		require.Contains(t, err.Error(), "resend: send email")
	})
}

func TestSender_Healthcheck(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, resend.New(resend.Config{}).Healthcheck(context.Background()), resend.ErrMissingAPIKey)
	require.NoError(t, resend.New(resend.Config{APIKey: "re_test"}).Healthcheck(context.Background()))
}
