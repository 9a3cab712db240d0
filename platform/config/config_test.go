package config

import "testing"

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/leads")
	t.Setenv("COMPANY_EMAIL", "hello@capyngen.com")
	t.Setenv("SMTP_HOST", "smtpout.secureserver.net")
	t.Setenv("SMTP_USER", "noreply@capyngen.com")
	t.Setenv("SMTP_PASS", "secret")
}

func TestLoad_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.HTTPAddr != ":5000" {
		t.Fatalf("unexpected addr %q", cfg.HTTPAddr)
	}
	if cfg.MailMode != MailModeSMTP {
		t.Fatalf("expected smtp default, got %q", cfg.MailMode)
	}
	if cfg.RateLimitPerMinute != 25 {
		t.Fatalf("expected default rate limit 25, got %d", cfg.RateLimitPerMinute)
	}
	if cfg.MailFromName != "Capyngen" {
		t.Fatalf("unexpected from name %q", cfg.MailFromName)
	}
	if cfg.MailFromAddress != "hello@capyngen.com" {
		t.Fatalf("from address must fall back to company email, got %q", cfg.MailFromAddress)
	}
	if !cfg.CORSAllowAll {
		t.Fatal("expected wildcard CORS by default")
	}
}

func TestLoad_SMTPSecureDerivedFromPort(t *testing.T) {
	cases := []struct {
		port     string
		override string
		want     bool
	}{
		{"465", "", true},
		{"587", "", false},
		{"587", "true", true},
		{"465", "false", false},
	}

	for _, tc := range cases {
		setBaseEnv(t)
		t.Setenv("SMTP_PORT", tc.port)
		if tc.override != "" {
			t.Setenv("SMTP_SECURE", tc.override)
		} else {
			t.Setenv("SMTP_SECURE", "")
		}

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load failed for port %s: %v", tc.port, err)
		}
		if cfg.SMTPSecure != tc.want {
			t.Fatalf("port %s override %q: expected secure=%v, got %v", tc.port, tc.override, tc.want, cfg.SMTPSecure)
		}
	}
}

func TestLoad_APIMode(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("MAIL_MODE", "api")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when BREVO_API_KEY is missing in api mode")
	}

	t.Setenv("BREVO_API_KEY", "key")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.MailMode != MailModeAPI {
		t.Fatalf("expected api mode, got %q", cfg.MailMode)
	}
}

func TestLoad_RequiredSettings(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("DATABASE_URL", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected error when DATABASE_URL is missing")
	}

	setBaseEnv(t)
	t.Setenv("COMPANY_EMAIL", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected error when COMPANY_EMAIL is missing")
	}

	setBaseEnv(t)
	t.Setenv("SMTP_HOST", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected error when SMTP settings are missing in smtp mode")
	}

	setBaseEnv(t)
	t.Setenv("MAIL_MODE", "pigeon")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown mail mode")
	}
}
