// Package email provides the outbound mail transport. Two interchangeable
// implementations exist behind the Sender interface: a direct SMTP submission
// (SMTPSender) and the Brevo transactional email API (BrevoSender). Exactly
// one variant is active per deployment, selected by configuration at startup.
package email

import (
	"context"
	"fmt"

	"capyngen_lead_backend/platform/config"
)

// Message is one outbound email. To may be empty, in which case the sender
// delivers to the configured company address. ReplyTo is omitted from the
// wire message entirely when empty.
type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
	ReplyTo string
}

// Sender delivers one message per call. The returned string is the provider
// message id when the transport reports one, or a short delivery status note.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// NewSender builds the transport variant selected by MAIL_MODE.
func NewSender(cfg config.MailConfig) (Sender, error) {
	switch cfg.GetMailMode() {
	case config.MailModeSMTP:
		return NewSMTPSender(cfg)
	case config.MailModeAPI:
		return NewBrevoSender(cfg), nil
	default:
		return nil, fmt.Errorf("unknown mail mode %q", cfg.GetMailMode())
	}
}

// resolveRecipient applies the company-address fallback. The result is never
// empty because config.Load requires COMPANY_EMAIL.
func resolveRecipient(to, companyEmail string) string {
	if to != "" {
		return to
	}
	return companyEmail
}
