package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/BruksfildServices01/receptionist-api/internal/models"
)

// SyncResult é o contrato do serviço externo de agenda
type SyncResult struct {
	Success   bool   `json:"success"`
	EventID   string `json:"event_id,omitempty"`
	EventLink string `json:"event_link,omitempty"`
	Skipped   bool   `json:"skipped,omitempty"`
	Error     string `json:"error,omitempty"`
}

type Client interface {
	SyncAppointment(ctx context.Context, ap *models.Appointment) (SyncResult, error)
}

// ===============================
// HTTP client
// ===============================

type HTTPClient struct {
	url   string
	token string
	http  *http.Client
}

func NewHTTPClient(url, token string) *HTTPClient {
	return &HTTPClient{
		url:   url,
		token: token,
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type syncPayload struct {
	Reference       string `json:"reference"`
	ScheduledAt     string `json:"scheduled_at"`
	DurationMinutes int    `json:"duration_minutes"`
	ServiceType     string `json:"service_type,omitempty"`
	ContactName     string `json:"contact_name,omitempty"`
	ContactPhone    string `json:"contact_phone,omitempty"`
}

func (c *HTTPClient) SyncAppointment(ctx context.Context, ap *models.Appointment) (SyncResult, error) {
	if c.url == "" {
		return SyncResult{Skipped: true}, nil
	}

	minutes := 0
	if ap.DurationMinutes != nil {
		minutes = *ap.DurationMinutes
	}

	payload := syncPayload{
		Reference:       ap.Reference,
		ScheduledAt:     ap.ScheduledAt.Format(time.RFC3339),
		DurationMinutes: minutes,
		ServiceType:     ap.ServiceType,
		ContactName:     ap.Contact.DisplayName(),
		ContactPhone:    ap.Contact.PhoneNumber,
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return SyncResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(raw))
	if err != nil {
		return SyncResult{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return SyncResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return SyncResult{}, errors.New("calendar sync returned non-2xx")
	}

	var result SyncResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return SyncResult{}, err
	}

	return result, nil
}

// NoopClient para ambientes sem agenda externa configurada
type NoopClient struct{}

func (NoopClient) SyncAppointment(_ context.Context, _ *models.Appointment) (SyncResult, error) {
	return SyncResult{Skipped: true}, nil
}
