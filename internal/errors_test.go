package internal_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sanjamesdev/portfolio/internal"
)

func TestAsHTTPError(t *testing.T) {
	t.Parallel()

	t.Run("direct HTTPError", func(t *testing.T) {
		t.Parallel()

		err := internal.ErrBadRequest("bad input")
		got := internal.AsHTTPError(err)
		require.NotNil(t, got)
		require.Equal(t, http.StatusBadRequest, got.StatusCode())
		require.Equal(t, "bad input", got.Error())
	})

	t.Run("wrapped HTTPError", func(t *testing.T) {
		t.Parallel()

		httpErr := internal.ErrTooManyRequests("slow down")
		err := fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", httpErr))
		require.Same(t, httpErr, internal.AsHTTPError(err))
	})

	t.Run("unrelated error", func(t *testing.T) {
		t.Parallel()
		require.Nil(t, internal.AsHTTPError(errors.New("boom")))
	})

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		require.Nil(t, internal.AsHTTPError(nil))
	})
}

func TestHTTPError_Options(t *testing.T) {
	t.Parallel()

	cause := errors.New("smtp down")
	err := internal.ErrInternal("Failed to send email",
		internal.WithError(cause),
		internal.WithErrorCode("send_failed"),
		internal.WithRequestID("req-1"),
	)

	require.Equal(t, http.StatusInternalServerError, err.Code)
	require.Equal(t, "Internal Server Error", err.StatusText())
	require.Equal(t, "send_failed", err.ErrorCode)
	require.Equal(t, "req-1", err.RequestID)
	require.ErrorIs(t, err, cause)
}
