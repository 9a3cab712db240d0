package service

import (
	"strings"
	"testing"
	"time"

	"capyngen_lead_backend/internal/leads/repository"
)

func testLead(email, notes *string) repository.Lead {
	return repository.Lead{
		FullName:     "Jane Doe",
		Email:        email,
		Phone:        "555-1234",
		City:         "Austin",
		BrandName:    "Acme",
		Website:      "No Website",
		BusinessType: "Retail",
		Services:     []string{"SEO", "Ads"},
		Budget:       "$1000-2000",
		BestTime:     "Evenings",
		Notes:        notes,
		CreatedAt:    time.Now(),
	}
}

func strPtr(s string) *string { return &s }

func TestBuildNotification_EscapesHTMLSignificantCharacters(t *testing.T) {
	lead := testLead(nil, strPtr(`say "hi" & <b>wave</b>`))
	lead.BrandName = `<script>alert('x')</script>`

	msg := buildNotification(lead, time.Now())

	if strings.Contains(msg.HTML, "<script>") {
		t.Fatal("raw markup from user input leaked into the HTML body")
	}
	if !strings.Contains(msg.HTML, "&lt;script&gt;") {
		t.Fatalf("expected escaped script tag in HTML, got: %s", msg.HTML)
	}
	if !strings.Contains(msg.HTML, "&amp;") {
		t.Fatal("expected escaped ampersand in HTML")
	}
	if strings.Contains(msg.HTML, `say "hi"`) {
		t.Fatal("expected quotes to be escaped in HTML")
	}
	// Plain text carries the original value untouched.
	if !strings.Contains(msg.Text, `say "hi" & <b>wave</b>`) {
		t.Fatalf("plain text must carry the raw value, got: %s", msg.Text)
	}
}

func TestBuildNotification_OptionalRowsOmittedWhenAbsent(t *testing.T) {
	msg := buildNotification(testLead(nil, nil), time.Now())

	if strings.Contains(msg.HTML, "Additional Notes") {
		t.Fatal("notes row must be omitted when notes are absent")
	}
	if strings.Contains(msg.HTML, ">Email:<") {
		t.Fatal("email row must be omitted when email is absent")
	}
	if !strings.Contains(msg.Text, "Email: -") {
		t.Fatalf("plain text must use dash placeholder for absent email, got: %s", msg.Text)
	}
	if !strings.Contains(msg.Text, "Notes: -") {
		t.Fatalf("plain text must use dash placeholder for absent notes, got: %s", msg.Text)
	}
}

func TestBuildNotification_CarriesAllFieldsAndFooter(t *testing.T) {
	sentAt := time.Date(2026, time.March, 5, 14, 30, 0, 0, time.UTC)
	msg := buildNotification(testLead(strPtr("jane@example.com"), nil), sentAt)

	for _, want := range []string{
		"New Marketing Lead", "Jane Doe", "jane@example.com", "555-1234",
		"Austin", "Acme", "No Website", "Retail", "SEO, Ads", "$1000-2000", "Evenings",
	} {
		if !strings.Contains(msg.HTML, want) {
			t.Fatalf("HTML body missing %q", want)
		}
	}
	if !strings.Contains(msg.HTML, "Sent on "+sentAt.Format("Jan 2, 2006 3:04:05 PM")) {
		t.Fatal("HTML footer missing send timestamp")
	}

	if msg.Subject != "[Lead] Jane Doe - Retail" {
		t.Fatalf("unexpected subject %q", msg.Subject)
	}
	if msg.To != "jane@example.com" || msg.ReplyTo != "jane@example.com" {
		t.Fatalf("expected lead email as recipient and reply-to, got to=%q replyTo=%q", msg.To, msg.ReplyTo)
	}
}
