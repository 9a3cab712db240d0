package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"capyngen_lead_backend/platform/config"
)

const brevoEndpoint = "https://api.brevo.com/v3/smtp/email"

// BrevoSender implements Sender against the Brevo transactional email API.
// It holds no connection state beyond a shared HTTP client.
type BrevoSender struct {
	apiKey       string
	fromName     string
	fromEmail    string
	companyEmail string
	baseURL      string
	client       *http.Client
}

type brevoParty struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

type brevoEmailRequest struct {
	Sender      brevoParty   `json:"sender"`
	To          []brevoParty `json:"to"`
	Subject     string       `json:"subject"`
	HTMLContent string       `json:"htmlContent"`
	TextContent string       `json:"textContent,omitempty"`
	ReplyTo     *brevoParty  `json:"replyTo,omitempty"`
}

type brevoEmailResponse struct {
	MessageID string `json:"messageId"`
}

// NewBrevoSender creates a BrevoSender from the configured API credentials.
func NewBrevoSender(cfg config.MailConfig) *BrevoSender {
	return &BrevoSender{
		apiKey:       cfg.GetBrevoAPIKey(),
		fromName:     cfg.GetMailFromName(),
		fromEmail:    cfg.GetMailFromAddress(),
		companyEmail: cfg.GetCompanyEmail(),
		baseURL:      brevoEndpoint,
		client:       &http.Client{Timeout: 10 * time.Second},
	}
}

// Send delivers one message through the Brevo send endpoint and returns the
// provider message id.
func (b *BrevoSender) Send(ctx context.Context, msg Message) (string, error) {
	payload := brevoEmailRequest{
		Sender:      brevoParty{Name: b.fromName, Email: b.fromEmail},
		To:          []brevoParty{{Email: resolveRecipient(msg.To, b.companyEmail)}},
		Subject:     msg.Subject,
		HTMLContent: msg.HTML,
		TextContent: msg.Text,
	}
	if msg.ReplyTo != "" {
		payload.ReplyTo = &brevoParty{Email: msg.ReplyTo}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("api-key", b.apiKey)
	req.Header.Set("content-type", "application/json")
	req.Header.Set("accept", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("brevo send: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("brevo send failed: status %d: %s", resp.StatusCode, string(data))
	}

	var result brevoEmailResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		// Accepted by the provider; the id is informational only.
		return "", nil
	}

	return result.MessageID, nil
}
