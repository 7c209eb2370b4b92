package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const brevoEndpoint = "https://api.brevo.com/v3/smtp/email"

// Sender delivers one transactional email. Implementations are best-effort:
// the caller treats failure as a warning, never as a reason to roll back.
type Sender interface {
	Send(ctx context.Context, to, toName, subject, html string) error
}

// Brevo sends transactional email through the Brevo (ex-Sendinblue) REST API.
type Brevo struct {
	apiKey      string
	senderEmail string
	senderName  string
	endpoint    string
	client      *http.Client
}

func NewBrevo(apiKey, senderEmail, senderName string) *Brevo {
	return &Brevo{
		apiKey:      apiKey,
		senderEmail: senderEmail,
		senderName:  senderName,
		endpoint:    brevoEndpoint,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

type brevoPayload struct {
	Sender      map[string]string   `json:"sender"`
	To          []map[string]string `json:"to"`
	Subject     string              `json:"subject"`
	HTMLContent string              `json:"htmlContent"`
}

func (b *Brevo) Send(ctx context.Context, to, toName, subject, html string) error {
	if to == "" || !strings.Contains(to, "@") {
		return fmt.Errorf("invalid recipient email: %q", to)
	}

	recipient := map[string]string{"email": to}
	if toName != "" {
		recipient["name"] = toName
	}

	payload := brevoPayload{
		Sender:      map[string]string{"email": b.senderEmail, "name": b.senderName},
		To:          []map[string]string{recipient},
		Subject:     subject,
		HTMLContent: html,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", b.apiKey)

	resp, err := b.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("brevo returned %d: %s", resp.StatusCode, string(detail))
	}
	return nil
}
