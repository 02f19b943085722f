// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
}

// QualifyConfig provides settings for lead scoring and the qualification policy.
type QualifyConfig interface {
	GetQualifyServices() []string
	GetQualifyZipPrefixes() []string
	GetQualifyMinBudget() float64
	GetQualifyASAPDays() float64
	GetQualifyPolicy() string
	GetQualifyMinScore() int
	GetQualifyTierABound() int
	GetQualifyTierBBound() int
	GetQualifyValidationMode() string
	GetRulesFile() string
}

// DispatchConfig provides settings for the notification dispatch coordinator.
type DispatchConfig interface {
	GetAlertThreshold() int
	GetNotifyAllLeads() bool
	GetAlertMaxLen() int
	GetAlertChannel() string
	GetDispatchTimeout() time.Duration
}

// TwilioConfig provides credentials for the Twilio SMS gateway.
type TwilioConfig interface {
	GetTwilioAccountSID() string
	GetTwilioAuthToken() string
	GetTwilioFrom() string
	GetTwilioTo() string
}

// SMTPConfig provides credentials for the SMTP alert gateway.
type SMTPConfig interface {
	GetSMTPHost() string
	GetSMTPPort() int
	GetSMTPUsername() string
	GetSMTPPassword() string
	GetAlertFromEmail() string
	GetAlertToEmail() string
}

// Policy modes, validation modes, and alert channels accepted by Load.
const (
	PolicyTiered    = "tiered"
	PolicyThreshold = "threshold"

	ValidationStrict  = "strict"
	ValidationLenient = "lenient"

	ChannelNone   = ""
	ChannelTwilio = "twilio"
	ChannelSMTP   = "smtp"
)

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env              string
	HTTPAddr         string
	CORSAllowAll     bool
	CORSOrigins      []string
	QualifyServices  []string
	QualifyZips      []string
	QualifyMinBudget float64
	QualifyASAPDays  float64
	QualifyPolicy    string
	QualifyMinScore  int
	QualifyTierA     int
	QualifyTierB     int
	ValidationMode   string
	RulesFile        string
	AlertThreshold   int
	NotifyAllLeads   bool
	AlertMaxLen      int
	AlertChannel     string
	DispatchTimeout  time.Duration
	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFrom       string
	TwilioTo         string
	SMTPHost         string
	SMTPPort         int
	SMTPUsername     string
	SMTPPassword     string
	AlertFromEmail   string
	AlertToEmail     string
}

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }

// QualifyConfig implementation
func (c *Config) GetQualifyServices() []string    { return c.QualifyServices }
func (c *Config) GetQualifyZipPrefixes() []string { return c.QualifyZips }
func (c *Config) GetQualifyMinBudget() float64    { return c.QualifyMinBudget }
func (c *Config) GetQualifyASAPDays() float64     { return c.QualifyASAPDays }
func (c *Config) GetQualifyPolicy() string        { return c.QualifyPolicy }
func (c *Config) GetQualifyMinScore() int         { return c.QualifyMinScore }
func (c *Config) GetQualifyTierABound() int       { return c.QualifyTierA }
func (c *Config) GetQualifyTierBBound() int       { return c.QualifyTierB }
func (c *Config) GetQualifyValidationMode() string {
	return c.ValidationMode
}
func (c *Config) GetRulesFile() string { return c.RulesFile }

// DispatchConfig implementation
func (c *Config) GetAlertThreshold() int            { return c.AlertThreshold }
func (c *Config) GetNotifyAllLeads() bool           { return c.NotifyAllLeads }
func (c *Config) GetAlertMaxLen() int               { return c.AlertMaxLen }
func (c *Config) GetAlertChannel() string           { return c.AlertChannel }
func (c *Config) GetDispatchTimeout() time.Duration { return c.DispatchTimeout }

// TwilioConfig implementation
func (c *Config) GetTwilioAccountSID() string { return c.TwilioAccountSID }
func (c *Config) GetTwilioAuthToken() string  { return c.TwilioAuthToken }
func (c *Config) GetTwilioFrom() string       { return c.TwilioFrom }
func (c *Config) GetTwilioTo() string         { return c.TwilioTo }

// SMTPConfig implementation
func (c *Config) GetSMTPHost() string       { return c.SMTPHost }
func (c *Config) GetSMTPPort() int          { return c.SMTPPort }
func (c *Config) GetSMTPUsername() string   { return c.SMTPUsername }
func (c *Config) GetSMTPPassword() string   { return c.SMTPPassword }
func (c *Config) GetAlertFromEmail() string { return c.AlertFromEmail }
func (c *Config) GetAlertToEmail() string   { return c.AlertToEmail }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "*"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "true"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:              getEnv("APP_ENV", "development"),
		HTTPAddr:         getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:     corsAllowAll,
		CORSOrigins:      corsOrigins,
		QualifyServices:  splitCSV(strings.ToLower(getEnv("QUALIFY_SERVICES", "roof repair,roof replacement,leak repair,inspection,gutters,insurance claim"))),
		QualifyZips:      splitCSV(getEnv("QUALIFY_ZIP_PREFIXES", "330,331,342")),
		QualifyMinBudget: mustFloat(getEnv("QUALIFY_MIN_BUDGET", "500")),
		QualifyASAPDays:  mustFloat(getEnv("QUALIFY_ASAP_DAYS", "30")),
		QualifyPolicy:    strings.ToLower(getEnv("QUALIFY_POLICY", PolicyTiered)),
		QualifyMinScore:  mustInt(getEnv("QUALIFY_MIN_SCORE", "60")),
		QualifyTierA:     mustInt(getEnv("QUALIFY_TIER_A_BOUND", "80")),
		QualifyTierB:     mustInt(getEnv("QUALIFY_TIER_B_BOUND", "60")),
		ValidationMode:   strings.ToLower(getEnv("QUALIFY_VALIDATION_MODE", ValidationStrict)),
		RulesFile:        getEnv("RULES_FILE", ""),
		AlertThreshold:   mustInt(getEnv("ALERT_THRESHOLD", "60")),
		NotifyAllLeads:   strings.EqualFold(getEnv("NOTIFY_ALL_LEADS", "false"), "true"),
		AlertMaxLen:      mustInt(getEnv("ALERT_MAX_LEN", "1500")),
		AlertChannel:     strings.ToLower(getEnv("ALERT_CHANNEL", ChannelTwilio)),
		DispatchTimeout:  mustDuration(getEnv("DISPATCH_TIMEOUT", "10s")),
		TwilioAccountSID: getEnv("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:  getEnv("TWILIO_AUTH_TOKEN", ""),
		TwilioFrom:       getEnv("TWILIO_FROM", ""),
		TwilioTo:         getEnv("TWILIO_TO", ""),
		SMTPHost:         getEnv("SMTP_HOST", ""),
		SMTPPort:         mustInt(getEnv("SMTP_PORT", "587")),
		SMTPUsername:     getEnv("SMTP_USERNAME", ""),
		SMTPPassword:     getEnv("SMTP_PASSWORD", ""),
		AlertFromEmail:   getEnv("ALERT_FROM_EMAIL", ""),
		AlertToEmail:     getEnv("ALERT_TO_EMAIL", ""),
	}

	if cfg.QualifyPolicy != PolicyTiered && cfg.QualifyPolicy != PolicyThreshold {
		return nil, fmt.Errorf("QUALIFY_POLICY must be %q or %q", PolicyTiered, PolicyThreshold)
	}
	if cfg.ValidationMode != ValidationStrict && cfg.ValidationMode != ValidationLenient {
		return nil, fmt.Errorf("QUALIFY_VALIDATION_MODE must be %q or %q", ValidationStrict, ValidationLenient)
	}
	switch cfg.AlertChannel {
	case ChannelNone, ChannelTwilio, ChannelSMTP:
	default:
		return nil, fmt.Errorf("ALERT_CHANNEL must be %q, %q, or empty", ChannelTwilio, ChannelSMTP)
	}
	// The truncation marker is three bytes, so anything shorter cannot hold it.
	if cfg.AlertMaxLen < 4 {
		return nil, fmt.Errorf("ALERT_MAX_LEN must be at least 4")
	}
	if cfg.DispatchTimeout <= 0 {
		return nil, fmt.Errorf("DISPATCH_TIMEOUT must be a positive duration")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt(value string) int {
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return result
}

func mustFloat(value string) float64 {
	result, err := strconv.ParseFloat(value, 64)
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
