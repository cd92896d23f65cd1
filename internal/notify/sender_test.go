package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSender_Send(t *testing.T) {
	var got map[string]any
	var auth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sender := NewHTTPSender(srv.URL, "api-key", "no-reply@frontdesk.local")
	err := sender.Send(context.Background(), "owner@example.com", "Incoming call", "Caller: +1555...")

	require.NoError(t, err)
	assert.Equal(t, "Bearer api-key", auth)
	assert.Equal(t, "no-reply@frontdesk.local", got["from"])
	assert.Equal(t, []any{"owner@example.com"}, got["to"])
	assert.Equal(t, "Incoming call", got["subject"])
}

func TestHTTPSender_Unconfigured(t *testing.T) {
	sender := NewHTTPSender("", "", "")
	err := sender.Send(context.Background(), "owner@example.com", "s", "b")
	assert.Error(t, err)
}

func TestHTTPSender_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	sender := NewHTTPSender(srv.URL, "api-key", "no-reply@frontdesk.local")
	err := sender.Send(context.Background(), "owner@example.com", "s", "b")
	assert.Error(t, err)
}
