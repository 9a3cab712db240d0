// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetRateLimitPerMinute() int
}

// MailConfig provides settings for the outbound mail transport.
type MailConfig interface {
	GetMailMode() MailMode
	GetMailFromName() string
	GetMailFromAddress() string
	GetCompanyEmail() string
	GetSMTPHost() string
	GetSMTPPort() int
	GetSMTPSecure() bool
	GetSMTPUser() string
	GetSMTPPass() string
	GetBrevoAPIKey() string
}

// MailMode selects which mail transport variant is active for this deployment.
type MailMode string

const (
	// MailModeSMTP delivers through a direct authenticated SMTP connection.
	MailModeSMTP MailMode = "smtp"
	// MailModeAPI delivers through the Brevo transactional email API.
	MailModeAPI MailMode = "api"
)

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                string
	HTTPAddr           string
	DatabaseURL        string
	CORSAllowAll       bool
	CORSOrigins        []string
	RateLimitPerMinute int
	MailMode           MailMode
	MailFromName       string
	MailFromAddress    string
	CompanyEmail       string
	SMTPHost           string
	SMTPPort           int
	SMTPSecure         bool
	SMTPUser           string
	SMTPPass           string
	BrevoAPIKey        string
}

// DatabaseConfig implementation
func (c *Config) GetDatabaseURL() string { return c.DatabaseURL }

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string        { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool      { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string   { return c.CORSOrigins }
func (c *Config) GetRateLimitPerMinute() int { return c.RateLimitPerMinute }

// MailConfig implementation
func (c *Config) GetMailMode() MailMode      { return c.MailMode }
func (c *Config) GetMailFromName() string    { return c.MailFromName }
func (c *Config) GetMailFromAddress() string { return c.MailFromAddress }
func (c *Config) GetCompanyEmail() string    { return c.CompanyEmail }
func (c *Config) GetSMTPHost() string        { return c.SMTPHost }
func (c *Config) GetSMTPPort() int           { return c.SMTPPort }
func (c *Config) GetSMTPSecure() bool        { return c.SMTPSecure }
func (c *Config) GetSMTPUser() string        { return c.SMTPUser }
func (c *Config) GetSMTPPass() string        { return c.SMTPPass }
func (c *Config) GetBrevoAPIKey() string     { return c.BrevoAPIKey }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "*"))
	corsAllowAll := containsWildcard(corsOrigins)

	smtpPort := mustInt(getEnv("SMTP_PORT", "465"))

	// Port convention: 465 implicit TLS, 587 STARTTLS upgrade. An explicit
	// SMTP_SECURE overrides the derived value.
	smtpSecure := smtpPort == 465
	if raw := getEnv("SMTP_SECURE", ""); raw != "" {
		smtpSecure = strings.EqualFold(raw, "true")
	}

	fromAddress := getEnv("MAIL_FROM_ADDRESS", "")
	companyEmail := getEnv("COMPANY_EMAIL", "")
	if fromAddress == "" {
		fromAddress = companyEmail
	}

	cfg := &Config{
		Env:                getEnv("APP_ENV", "development"),
		HTTPAddr:           getEnv("HTTP_ADDR", ":5000"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		CORSAllowAll:       corsAllowAll,
		CORSOrigins:        corsOrigins,
		RateLimitPerMinute: mustInt(getEnv("RATE_LIMIT_PER_MINUTE", "25")),
		MailMode:           MailMode(strings.ToLower(getEnv("MAIL_MODE", "smtp"))),
		MailFromName:       getEnv("MAIL_FROM_NAME", "Capyngen"),
		MailFromAddress:    fromAddress,
		CompanyEmail:       companyEmail,
		SMTPHost:           getEnv("SMTP_HOST", ""),
		SMTPPort:           smtpPort,
		SMTPSecure:         smtpSecure,
		SMTPUser:           getEnv("SMTP_USER", ""),
		SMTPPass:           getEnv("SMTP_PASS", ""),
		BrevoAPIKey:        getEnv("BREVO_API_KEY", ""),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.CompanyEmail == "" {
		return nil, fmt.Errorf("COMPANY_EMAIL is required")
	}
	if cfg.RateLimitPerMinute <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}

	switch cfg.MailMode {
	case MailModeSMTP:
		if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPass == "" {
			return nil, fmt.Errorf("SMTP_HOST, SMTP_USER and SMTP_PASS are required when MAIL_MODE is smtp")
		}
	case MailModeAPI:
		if cfg.BrevoAPIKey == "" {
			return nil, fmt.Errorf("BREVO_API_KEY is required when MAIL_MODE is api")
		}
	default:
		return nil, fmt.Errorf("MAIL_MODE must be smtp or api, got %q", cfg.MailMode)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustInt(value string) int {
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
