package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"
)

type Sender interface {
	Send(ctx context.Context, to string, subject string, body string) error
}

// HTTPSender envia e-mail via API HTTP (formato Resend)
type HTTPSender struct {
	url  string
	key  string
	from string
	http *http.Client
}

func NewHTTPSender(url, key, from string) *HTTPSender {
	return &HTTPSender{
		url:  strings.TrimSpace(url),
		key:  strings.TrimSpace(key),
		from: strings.TrimSpace(from),
		http: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

func (s *HTTPSender) Send(ctx context.Context, to string, subject string, body string) error {
	if s.url == "" || s.key == "" {
		return errors.New("email api not configured")
	}

	payload := map[string]any{
		"from":    s.from,
		"to":      []string{to},
		"subject": subject,
		"text":    body,
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.key)

	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.New("email api returned non-2xx")
	}

	return nil
}

// NoopSender para ambientes sem e-mail configurado
type NoopSender struct{}

func (NoopSender) Send(_ context.Context, _ string, _ string, _ string) error {
	return nil
}
