// Package dispatch decides whether a qualified lead warrants an operator
// notification and makes the single best-effort gateway attempt.
package dispatch

import (
	"context"
	"time"

	"leadgate_backend/internal/leads/domain"
	"leadgate_backend/platform/config"
	"leadgate_backend/platform/logger"
)

// Gateway is the narrow capability interface to the external messaging
// channel. Implementations deliver one message body to the configured
// operator destination and return an opaque confirmation id.
type Gateway interface {
	// Send delivers the body; it must respect ctx cancellation.
	Send(ctx context.Context, body string) (string, error)
	// Channel names the transport for logs and outcomes.
	Channel() string
}

// Coordinator applies the dispatch policy. It holds no per-request state
// and is safe for concurrent use.
type Coordinator struct {
	gateway   Gateway
	threshold int
	notifyAll bool
	timeout   time.Duration
	log       *logger.Logger
}

// New builds a Coordinator. A nil gateway is a first-class state meaning the
// messaging channel is not configured; it is not an error.
func New(gateway Gateway, cfg config.DispatchConfig, log *logger.Logger) *Coordinator {
	return &Coordinator{
		gateway:   gateway,
		threshold: cfg.GetAlertThreshold(),
		notifyAll: cfg.GetNotifyAllLeads(),
		timeout:   cfg.GetDispatchTimeout(),
		log:       log,
	}
}

// ShouldAttempt reports whether the dispatch trigger fires for a score.
func (c *Coordinator) ShouldAttempt(score int) bool {
	return score >= c.threshold || c.notifyAll
}

// Dispatch runs the policy for one lead. The body is rendered lazily so the
// alert is only formatted when a gateway call will actually be made. Exactly
// one attempt is made; a failure is captured in the outcome and logged,
// never returned, so qualification success is unaffected.
func (c *Coordinator) Dispatch(ctx context.Context, leadID string, score int, render func() string) domain.DispatchOutcome {
	if !c.ShouldAttempt(score) {
		return domain.DispatchOutcome{SkipReason: domain.SkipBelowThreshold}
	}

	if c.gateway == nil {
		return domain.DispatchOutcome{SkipReason: domain.SkipGatewayUnconfigured}
	}

	log := c.log.WithContext(ctx)
	log.DispatchAttempt(leadID, c.gateway.Channel(), score)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	id, err := c.gateway.Send(ctx, render())
	if err != nil {
		log.DispatchFailed(leadID, c.gateway.Channel(), err)
		return domain.DispatchOutcome{Attempted: true, Error: err.Error()}
	}

	return domain.DispatchOutcome{Attempted: true, Sent: true, MessageID: id}
}
