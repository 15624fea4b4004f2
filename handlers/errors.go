package handlers

import (
	"log/slog"
	"net/http"

	"github.com/sanjamesdev/portfolio"
	"github.com/sanjamesdev/portfolio/middlewares"
)

type apiError struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorHandler renders handler errors as JSON. Only HTTPError messages are
// shown to the caller; everything else gets the status text.
func ErrorHandler(c portfolio.Context, err error) error {
	resp := apiError{RequestID: middlewares.GetRequestID(c)}
	status := http.StatusInternalServerError

	if httpErr := portfolio.AsHTTPError(err); httpErr != nil {
		status = httpErr.Code
		resp.Error = httpErr.Message
		resp.Code = httpErr.ErrorCode
	} else if _, ok := middlewares.AsRateLimitError(err); ok {
		status = http.StatusTooManyRequests
	} else if _, ok := middlewares.AsTimeoutError(err); ok {
		status = http.StatusServiceUnavailable
	}

	if resp.Error == "" {
		resp.Error = http.StatusText(status)
	}

	if status >= http.StatusInternalServerError {
		c.LogError("request failed", slog.Int("status", status), slog.Any("error", err))
	} else {
		c.LogDebug("request rejected", slog.Int("status", status), slog.Any("error", err))
	}

	return c.JSON(status, resp)
}

// NotFound answers unknown routes with a JSON 404.
func NotFound(c portfolio.Context) error {
	return c.JSON(http.StatusNotFound, apiError{
		Error:     http.StatusText(http.StatusNotFound),
		RequestID: middlewares.GetRequestID(c),
	})
}

// MethodNotAllowed answers known routes hit with the wrong method.
func MethodNotAllowed(c portfolio.Context) error {
	return c.JSON(http.StatusMethodNotAllowed, apiError{
		Error:     http.StatusText(http.StatusMethodNotAllowed),
		RequestID: middlewares.GetRequestID(c),
	})
}
