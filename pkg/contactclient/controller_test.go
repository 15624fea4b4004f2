package contactclient_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanjamesdev/portfolio/pkg/contactclient"
)

type relayStub struct {
	mu       sync.Mutex
	payloads []contactclient.Fields
	status   int
	body     string
	release  chan struct{}
	started  chan struct{}
}

func (s *relayStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var f contactclient.Fields
	_ = json.NewDecoder(r.Body).Decode(&f)

	s.mu.Lock()
	s.payloads = append(s.payloads, f)
	status, body := s.status, s.body
	s.mu.Unlock()

	if s.started != nil {
		s.started <- struct{}{}
	}
	if s.release != nil {
		<-s.release
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func (s *relayStub) received() []contactclient.Fields {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]contactclient.Fields(nil), s.payloads...)
}

func newStub(t *testing.T, status int, body string) (*relayStub, *contactclient.Controller) {
	t.Helper()

	stub := &relayStub{status: status, body: body}
	srv := httptest.NewServer(stub)
	t.Cleanup(srv.Close)

	return stub, contactclient.New(srv.URL+"/api/contact", contactclient.WithHTTPClient(srv.Client()))
}

func fill(t *testing.T, c *contactclient.Controller) {
	t.Helper()
	require.NoError(t, c.UpdateField(contactclient.FieldName, "Ada"))
	require.NoError(t, c.UpdateField(contactclient.FieldEmail, "ada@example.com"))
	require.NoError(t, c.UpdateField(contactclient.FieldSubject, "Hello"))
	require.NoError(t, c.UpdateField(contactclient.FieldMessage, "Let's talk."))
}

func TestController_Submit(t *testing.T) {
	t.Parallel()

	t.Run("success clears fields and locks", func(t *testing.T) {
		t.Parallel()

		stub, c := newStub(t, http.StatusOK, `{"success":true}`)
		fill(t, c)

		require.NoError(t, c.Submit(context.Background()))

		st := c.State()
		require.Equal(t, contactclient.StatusSuccess, st.Status)
		require.False(t, st.Loading)
		require.Equal(t, contactclient.Fields{}, st.Fields)
		require.False(t, st.CanSubmit())
		require.Equal(t, "✓ Message Sent", st.ButtonLabel())

		require.Equal(t, []contactclient.Fields{{
			Name: "Ada", Email: "ada@example.com", Subject: "Hello", Message: "Let's talk.",
		}}, stub.received())

		fill(t, c)
		require.ErrorIs(t, c.Submit(context.Background()), contactclient.ErrAlreadySent)
		require.Len(t, stub.received(), 1)
	})

	t.Run("server error keeps fields", func(t *testing.T) {
		t.Parallel()

		_, c := newStub(t, http.StatusInternalServerError, `{"error":"Failed to send email"}`)
		fill(t, c)

		err := c.Submit(context.Background())
		require.ErrorIs(t, err, contactclient.ErrSubmitFailed)

		var re *contactclient.ResponseError
		require.ErrorAs(t, err, &re)
		require.Equal(t, http.StatusInternalServerError, re.StatusCode)
		require.Equal(t, "Failed to send email", re.Message)

		st := c.State()
		require.Equal(t, contactclient.StatusError, st.Status)
		require.False(t, st.Loading)
		require.Equal(t, "Ada", st.Fields.Name)
		require.Equal(t, contactclient.ErrorMessage, st.Notice())
		require.True(t, st.CanSubmit())
	})

	t.Run("retry after error", func(t *testing.T) {
		t.Parallel()

		stub, c := newStub(t, http.StatusBadRequest, `{"error":"Missing required fields"}`)
		fill(t, c)
		require.Error(t, c.Submit(context.Background()))

		stub.mu.Lock()
		stub.status, stub.body = http.StatusOK, `{"success":true}`
		stub.mu.Unlock()

		require.NoError(t, c.Submit(context.Background()))
		require.Equal(t, contactclient.StatusSuccess, c.State().Status)
		require.Len(t, stub.received(), 2)
	})

	t.Run("network failure", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		c := contactclient.New(url, contactclient.WithTimeout(time.Second))
		fill(t, c)

		require.ErrorIs(t, c.Submit(context.Background()), contactclient.ErrSubmitFailed)
		require.Equal(t, contactclient.StatusError, c.State().Status)
		require.Equal(t, "Ada", c.State().Fields.Name)
	})

	t.Run("constraints block the request", func(t *testing.T) {
		t.Parallel()

		stub, c := newStub(t, http.StatusOK, `{"success":true}`)
		require.NoError(t, c.UpdateField(contactclient.FieldName, "Ada"))
		require.NoError(t, c.UpdateField(contactclient.FieldEmail, "not-an-email"))
		require.NoError(t, c.UpdateField(contactclient.FieldMessage, "Hi"))

		require.ErrorIs(t, c.Submit(context.Background()), contactclient.ErrConstraint)
		require.Empty(t, stub.received())
		require.Equal(t, contactclient.StatusIdle, c.State().Status)
	})

	t.Run("busy while in flight and payload is a snapshot", func(t *testing.T) {
		t.Parallel()

		stub := &relayStub{
			status:  http.StatusOK,
			body:    `{"success":true}`,
			release: make(chan struct{}),
			started: make(chan struct{}, 1),
		}
		srv := httptest.NewServer(stub)
		t.Cleanup(srv.Close)

		c := contactclient.New(srv.URL, contactclient.WithHTTPClient(srv.Client()))
		fill(t, c)

		done := make(chan error, 1)
		go func() { done <- c.Submit(context.Background()) }()

		<-stub.started
		st := c.State()
		require.True(t, st.Loading)
		require.Equal(t, contactclient.StatusIdle, st.Status)
		require.Equal(t, "Sending...", st.ButtonLabel())
		require.False(t, c.CanSubmit())

		require.ErrorIs(t, c.Submit(context.Background()), contactclient.ErrBusy)
		require.NoError(t, c.UpdateField(contactclient.FieldMessage, "edited while sending"))
		require.Equal(t, "edited while sending", c.State().Fields.Message)

		close(stub.release)
		require.NoError(t, <-done)

		payloads := stub.received()
		require.Len(t, payloads, 1)
		require.Equal(t, "Let's talk.", payloads[0].Message)
	})

	t.Run("reset discards in-flight outcome", func(t *testing.T) {
		t.Parallel()

		stub := &relayStub{
			status:  http.StatusOK,
			body:    `{"success":true}`,
			release: make(chan struct{}),
			started: make(chan struct{}, 1),
		}
		srv := httptest.NewServer(stub)
		t.Cleanup(srv.Close)

		c := contactclient.New(srv.URL, contactclient.WithHTTPClient(srv.Client()))
		fill(t, c)

		done := make(chan error, 1)
		go func() { done <- c.Submit(context.Background()) }()

		<-stub.started
		c.Reset()
		require.NoError(t, c.UpdateField(contactclient.FieldName, "Grace"))

		close(stub.release)
		require.NoError(t, <-done)

		st := c.State()
		require.Equal(t, contactclient.StatusIdle, st.Status)
		require.False(t, st.Loading)
		require.Equal(t, "Grace", st.Fields.Name)
	})
}

func TestController_Subscribe(t *testing.T) {
	t.Parallel()

	_, c := newStub(t, http.StatusOK, `{"success":true}`)
	fill(t, c)

	var (
		mu     sync.Mutex
		states []contactclient.State
	)
	unsubscribe := c.Subscribe(func(s contactclient.State) {
		mu.Lock()
		states = append(states, s)
		mu.Unlock()
	})

	require.NoError(t, c.Submit(context.Background()))
	unsubscribe()
	require.NoError(t, c.UpdateField(contactclient.FieldName, "ignored"))

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, states, 2)
	require.True(t, states[0].Loading)
	require.Equal(t, contactclient.StatusSuccess, states[1].Status)
	require.False(t, states[1].Loading)
}

func TestController_SubscribeConcurrentUpdates(t *testing.T) {
	t.Parallel()

	c := contactclient.New("http://127.0.0.1:1")

	var (
		mu   sync.Mutex
		last contactclient.State
		seen int
	)
	c.Subscribe(func(s contactclient.State) {
		mu.Lock()
		last = s
		seen++
		mu.Unlock()
	})

	const writers = 8
	var wg sync.WaitGroup
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 50 {
				assert.NoError(t, c.UpdateField(contactclient.FieldMessage, fmt.Sprintf("w%d-%d", i, j)))
			}
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, writers*50, seen)
	require.Equal(t, c.State(), last)
}

func TestController_UpdateField(t *testing.T) {
	t.Parallel()

	c := contactclient.New("http://127.0.0.1:1")

	require.ErrorIs(t, c.UpdateField(contactclient.Field(42), "x"), contactclient.ErrUnknownField)

	require.NoError(t, c.UpdateField(contactclient.FieldEmail, "  ada@example.com\n"))
	require.Equal(t, "ada@example.com", c.State().Fields.Email)

	require.NoError(t, c.UpdateField(contactclient.FieldName, "Ada"))
	require.Equal(t, "ada@example.com", c.State().Fields.Email)
}

func TestCheckConstraints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		fields contactclient.Fields
		ok     bool
	}{
		{"complete", contactclient.Fields{Name: "Ada", Email: "ada@example.com", Message: "Hi"}, true},
		{"subject optional", contactclient.Fields{Name: "Ada", Email: "a@b", Message: "Hi"}, true},
		{"whitespace name allowed", contactclient.Fields{Name: " ", Email: "ada@example.com", Message: "Hi"}, true},
		{"missing name", contactclient.Fields{Email: "ada@example.com", Message: "Hi"}, false},
		{"missing email", contactclient.Fields{Name: "Ada", Message: "Hi"}, false},
		{"missing message", contactclient.Fields{Name: "Ada", Email: "ada@example.com"}, false},
		{"no at sign", contactclient.Fields{Name: "Ada", Email: "ada.example.com", Message: "Hi"}, false},
		{"empty domain label", contactclient.Fields{Name: "Ada", Email: "ada@example..com", Message: "Hi"}, false},
		{"display name form", contactclient.Fields{Name: "Ada", Email: "Ada <ada@example.com>", Message: "Hi"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := contactclient.New("http://127.0.0.1:1")
			require.NoError(t, c.UpdateField(contactclient.FieldName, tt.fields.Name))
			require.NoError(t, c.UpdateField(contactclient.FieldEmail, tt.fields.Email))
			require.NoError(t, c.UpdateField(contactclient.FieldMessage, tt.fields.Message))

			err := c.CheckConstraints()
			if tt.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, contactclient.ErrConstraint)
		})
	}
}

func TestParseField(t *testing.T) {
	t.Parallel()

	f, err := contactclient.ParseField("message")
	require.NoError(t, err)
	require.Equal(t, contactclient.FieldMessage, f)

	_, err = contactclient.ParseField("phone")
	require.ErrorIs(t, err, contactclient.ErrUnknownField)
}
