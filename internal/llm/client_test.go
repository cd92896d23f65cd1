package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Complete(t *testing.T) {
	var got completionRequest
	var path string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "Caller booked a cleaning for Tuesday."}},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "key", "gpt-4o-mini")
	out, err := client.Complete(context.Background(), "summarize", "transcript text")

	require.NoError(t, err)
	assert.Equal(t, "Caller booked a cleaning for Tuesday.", out)
	assert.Equal(t, "/chat/completions", path)
	assert.Equal(t, "gpt-4o-mini", got.Model)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "transcript text", got.Messages[1].Content)
}

func TestClient_NoAPIKey(t *testing.T) {
	client := NewClient("https://api.example.com", "", "gpt-4o-mini")
	_, err := client.Complete(context.Background(), "s", "u")
	assert.Error(t, err)
}

func TestClient_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "key", "gpt-4o-mini")
	_, err := client.Complete(context.Background(), "s", "u")
	assert.Error(t, err)
}
