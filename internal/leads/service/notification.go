package service

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"capyngen_lead_backend/internal/email"
	"capyngen_lead_backend/internal/leads/repository"
)

//go:embed templates/*.html
var templateFS embed.FS

var notificationTmpl = template.Must(
	template.ParseFS(templateFS, "templates/lead_notification.html"),
)

// notificationData is the template input. html/template escapes every
// interpolated value, so markup in user input never reaches the mail body raw.
type notificationData struct {
	FullName     string
	Email        string
	Phone        string
	City         string
	BrandName    string
	Website      string
	BusinessType string
	Services     string
	Budget       string
	BestTime     string
	Notes        string
	SentAt       string
}

// buildNotification derives the transient outbound email from a stored lead.
// The lead's own email, when present, doubles as recipient and reply-to;
// otherwise the sender falls back to the configured company address.
func buildNotification(lead repository.Lead, sentAt time.Time) email.Message {
	data := notificationData{
		FullName:     lead.FullName,
		Email:        deref(lead.Email),
		Phone:        lead.Phone,
		City:         lead.City,
		BrandName:    lead.BrandName,
		Website:      lead.Website,
		BusinessType: lead.BusinessType,
		Services:     strings.Join(lead.Services, ", "),
		Budget:       lead.Budget,
		BestTime:     lead.BestTime,
		Notes:        deref(lead.Notes),
		SentAt:       sentAt.Format("Jan 2, 2006 3:04:05 PM"),
	}

	var buf bytes.Buffer
	if err := notificationTmpl.Execute(&buf, data); err != nil {
		// The template is embedded and executes over plain strings; a failure
		// here is a programming error.
		panic(fmt.Sprintf("render lead notification: %v", err))
	}

	return email.Message{
		To:      data.Email,
		Subject: fmt.Sprintf("[Lead] %s - %s", lead.FullName, lead.BusinessType),
		HTML:    buf.String(),
		Text:    buildPlainText(data),
		ReplyTo: data.Email,
	}
}

func buildPlainText(data notificationData) string {
	return fmt.Sprintf(`New Lead Submission:

Full Name: %s
Email: %s
Phone: %s
City: %s
Brand: %s
Website: %s
Business Type: %s
Services: %s
Budget: %s
Best Time To Call: %s
Notes: %s
Sent: %s
`,
		data.FullName,
		orDash(data.Email),
		data.Phone,
		data.City,
		data.BrandName,
		data.Website,
		data.BusinessType,
		data.Services,
		data.Budget,
		data.BestTime,
		orDash(data.Notes),
		data.SentAt,
	)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
