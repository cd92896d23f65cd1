package calendar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/receptionist-api/internal/models"
)

func TestHTTPClient_SyncAppointment(t *testing.T) {
	var got syncPayload
	var auth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		json.NewEncoder(w).Encode(SyncResult{
			Success:   true,
			EventID:   "evt_123",
			EventLink: "https://calendar.example.com/evt_123",
		})
	}))
	defer srv.Close()

	duration := 45
	ap := &models.Appointment{
		Reference:       "ref-abc",
		ScheduledAt:     time.Date(2099, 3, 10, 14, 0, 0, 0, time.UTC),
		DurationMinutes: &duration,
		ServiceType:     "cleaning",
		Contact: models.Contact{
			Name:        "Maria Souza",
			PhoneNumber: "+15550002222",
		},
	}

	client := NewHTTPClient(srv.URL, "secret-token")
	result, err := client.SyncAppointment(context.Background(), ap)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "evt_123", result.EventID)

	assert.Equal(t, "Bearer secret-token", auth)
	assert.Equal(t, "ref-abc", got.Reference)
	assert.Equal(t, 45, got.DurationMinutes)
	assert.Equal(t, "Maria Souza", got.ContactName)
}

func TestHTTPClient_SkipsWhenUnconfigured(t *testing.T) {
	client := NewHTTPClient("", "")
	result, err := client.SyncAppointment(context.Background(), &models.Appointment{})

	require.NoError(t, err)
	assert.True(t, result.Skipped)
}

func TestHTTPClient_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, "")
	_, err := client.SyncAppointment(context.Background(), &models.Appointment{})
	assert.Error(t, err)
}
