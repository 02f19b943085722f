// Package mailalert delivers operator alerts over SMTP for installations
// without an SMS account. It implements the same gateway capability as the
// Twilio client.
package mailalert

import (
	"context"
	"fmt"
	"strings"
	"time"

	"leadgate_backend/platform/config"

	gomail "github.com/wneessen/go-mail"
)

const alertSubject = "New lead alert"

// Sender delivers the alert body as a plain-text email. A nil *Sender means
// the gateway is not configured.
type Sender struct {
	host     string
	port     int
	username string
	password string
	from     string
	to       string
}

// NewSender builds the SMTP sender, or returns nil when the host or either
// address is missing.
func NewSender(cfg config.SMTPConfig) *Sender {
	if cfg.GetSMTPHost() == "" || cfg.GetAlertFromEmail() == "" || cfg.GetAlertToEmail() == "" {
		return nil
	}

	return &Sender{
		host:     cfg.GetSMTPHost(),
		port:     cfg.GetSMTPPort(),
		username: cfg.GetSMTPUsername(),
		password: cfg.GetSMTPPassword(),
		from:     cfg.GetAlertFromEmail(),
		to:       cfg.GetAlertToEmail(),
	}
}

// Channel implements the gateway capability.
func (s *Sender) Channel() string { return "smtp" }

// Send delivers one alert email and returns its generated Message-ID.
func (s *Sender) Send(ctx context.Context, body string) (string, error) {
	msg := gomail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return "", fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(s.to); err != nil {
		return "", fmt.Errorf("smtp to: %w", err)
	}
	msg.SetMessageID()
	msg.Subject(alertSubject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	client, err := gomail.NewClient(s.host,
		gomail.WithPort(s.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.username),
		gomail.WithPassword(s.password),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(15*time.Second),
	)
	if err != nil {
		return "", fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return "", fmt.Errorf("smtp send: %w", err)
	}

	messageID := ""
	if ids := msg.GetGenHeader(gomail.HeaderMessageID); len(ids) > 0 {
		messageID = strings.Trim(ids[0], "<>")
	}
	return messageID, nil
}
