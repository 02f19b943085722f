// Package sms delivers operator alerts through the Twilio Messages REST API.
package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"leadgate_backend/platform/config"
	"leadgate_backend/platform/logger"
)

const defaultBaseURL = "https://api.twilio.com"

// Client is a Twilio SMS gateway. A nil *Client means the gateway is not
// configured; callers treat that as the absent-gateway state, not a failure.
type Client struct {
	baseURL    string
	accountSID string
	authToken  string
	from       string
	to         string
	http       *http.Client
	log        *logger.Logger
}

// messageResponse is the subset of Twilio's message resource we record.
type messageResponse struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}

// errorResponse is Twilio's error envelope.
type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewClient builds the Twilio client, or returns nil when any required
// credential or address is missing.
func NewClient(cfg config.TwilioConfig, log *logger.Logger) *Client {
	if cfg.GetTwilioAccountSID() == "" || cfg.GetTwilioAuthToken() == "" ||
		cfg.GetTwilioFrom() == "" || cfg.GetTwilioTo() == "" {
		return nil
	}

	return &Client{
		baseURL:    defaultBaseURL,
		accountSID: cfg.GetTwilioAccountSID(),
		authToken:  cfg.GetTwilioAuthToken(),
		from:       cfg.GetTwilioFrom(),
		to:         cfg.GetTwilioTo(),
		http:       &http.Client{Timeout: 10 * time.Second},
		log:        log,
	}
}

// Channel implements the gateway capability.
func (c *Client) Channel() string { return "twilio" }

// Send posts one SMS to the configured operator number and returns the
// message SID Twilio assigned.
func (c *Client) Send(ctx context.Context, body string) (string, error) {
	form := url.Values{}
	form.Set("From", c.from)
	form.Set("To", c.to)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", strings.TrimRight(c.baseURL, "/"), c.accountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.accountSID, c.authToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("twilio request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("twilio response read: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr errorResponse
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Message != "" {
			return "", fmt.Errorf("twilio returned %d: %s (code %d)", resp.StatusCode, apiErr.Message, apiErr.Code)
		}
		return "", fmt.Errorf("twilio returned %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var msg messageResponse
	if err := json.Unmarshal(data, &msg); err != nil {
		return "", fmt.Errorf("twilio response decode: %w", err)
	}

	c.log.Info("sms sent via twilio", "sid", msg.SID, "status", msg.Status)
	return msg.SID, nil
}
