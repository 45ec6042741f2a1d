package httpserver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContactEndpoint_RelaysMessageToSupport(t *testing.T) {
	srv, d := newTestServer(t)

	var gotName, gotReplyTo, gotMessage string
	d.emails.SendContactMessageFn = func(ctx context.Context, name, replyTo, message string) error {
		gotName, gotReplyTo, gotMessage = name, replyTo, message
		return nil
	}

	ts := httptest.NewServer(srv.Echo())
	defer ts.Close()

	resp, body := doJSON(t, ts, http.MethodPost, "/contact", map[string]string{
		"name":    "  Sam Diner  ",
		"email":   "sam@example.com",
		"message": "Do you cover weddings?",
	}, "")
	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	require.Equal(t, "Sam Diner", gotName)
	require.Equal(t, "sam@example.com", gotReplyTo)
	require.Equal(t, "Do you cover weddings?", gotMessage)

	var out map[string]string
	require.NoError(t, json.Unmarshal(body, &out))
	require.NotEmpty(t, out["message"])
}

func TestContactEndpoint_ValidatesAndRateLimits(t *testing.T) {
	srv, _ := newTestServer(t)
	ts := httptest.NewServer(srv.Echo())
	defer ts.Close()

	valid := map[string]string{"name": "Sam", "email": "sam@example.com", "message": "hello"}

	resp, _ := doJSON(t, ts, http.MethodPost, "/contact", valid, "")
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	// Blank fields are rejected but still spend contact quota.
	resp, _ = doJSON(t, ts, http.MethodPost, "/contact", map[string]string{"name": "Sam"}, "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// The test policy allows two contact requests per window.
	resp, _ = doJSON(t, ts, http.MethodPost, "/contact", valid, "")
	require.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	require.NotEmpty(t, resp.Header.Get("Retry-After"))
	require.Equal(t, "0", resp.Header.Get("X-RateLimit-Remaining"))
}
