package email

import (
	"context"
	"fmt"
	"time"

	"capyngen_lead_backend/platform/config"

	gomail "github.com/wneessen/go-mail"
)

// SMTPSender implements Sender over a direct authenticated SMTP connection
// via go-mail. The client is built once at startup and reused for every send.
type SMTPSender struct {
	client       *gomail.Client
	host         string
	fromName     string
	fromEmail    string
	companyEmail string
}

// NewSMTPSender creates an SMTPSender from the configured relay settings.
// Port 465 uses implicit TLS, port 587 upgrades via STARTTLS.
func NewSMTPSender(cfg config.MailConfig) (*SMTPSender, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.GetSMTPPort()),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.GetSMTPUser()),
		gomail.WithPassword(cfg.GetSMTPPass()),
		gomail.WithTimeout(15 * time.Second),
	}
	if cfg.GetSMTPSecure() {
		opts = append(opts, gomail.WithSSL())
	} else {
		opts = append(opts, gomail.WithTLSPortPolicy(gomail.TLSOpportunistic))
	}

	client, err := gomail.NewClient(cfg.GetSMTPHost(), opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}

	return &SMTPSender{
		client:       client,
		host:         cfg.GetSMTPHost(),
		fromName:     cfg.GetMailFromName(),
		fromEmail:    cfg.GetMailFromAddress(),
		companyEmail: cfg.GetCompanyEmail(),
	}, nil
}

// Send delivers one message over the reused SMTP client.
func (s *SMTPSender) Send(ctx context.Context, msg Message) (string, error) {
	m := gomail.NewMsg()
	if err := m.FromFormat(s.fromName, s.fromEmail); err != nil {
		return "", fmt.Errorf("smtp from: %w", err)
	}
	if err := m.To(resolveRecipient(msg.To, s.companyEmail)); err != nil {
		return "", fmt.Errorf("smtp to: %w", err)
	}
	if msg.ReplyTo != "" {
		if err := m.ReplyTo(msg.ReplyTo); err != nil {
			return "", fmt.Errorf("smtp reply-to: %w", err)
		}
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextPlain, msg.Text)
	m.AddAlternativeString(gomail.TypeTextHTML, msg.HTML)
	m.SetMessageID()

	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return "", fmt.Errorf("smtp send via %s: %w", s.host, err)
	}

	return m.GetMessageID(), nil
}
