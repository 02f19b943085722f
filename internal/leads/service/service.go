// Package service orchestrates the lead pipeline: normalization, rule
// evaluation, policy mapping, and dispatch. Each submission is an
// independent, stateless unit of work.
package service

import (
	"context"

	"leadgate_backend/internal/leads/dispatch"
	"leadgate_backend/internal/leads/domain"
	"leadgate_backend/internal/leads/format"
	"leadgate_backend/internal/leads/scoring"
	"leadgate_backend/internal/leads/transport"
	"leadgate_backend/platform/apperr"
	"leadgate_backend/platform/config"
	"leadgate_backend/platform/events"
	"leadgate_backend/platform/logger"
	"leadgate_backend/platform/phone"
	"leadgate_backend/platform/sanitize"

	"github.com/google/uuid"
)

// Service runs the qualification pipeline for one lead at a time.
type Service struct {
	rules       *scoring.RuleSet
	policy      scoring.Policy
	coordinator *dispatch.Coordinator
	validation  string
	maxAlertLen int
	bus         events.Bus
	log         *logger.Logger
}

// New creates the leads service.
func New(rules *scoring.RuleSet, policy scoring.Policy, coordinator *dispatch.Coordinator, qcfg config.QualifyConfig, dcfg config.DispatchConfig, bus events.Bus, log *logger.Logger) *Service {
	return &Service{
		rules:       rules,
		policy:      policy,
		coordinator: coordinator,
		validation:  qcfg.GetQualifyValidationMode(),
		maxAlertLen: dcfg.GetAlertMaxLen(),
		bus:         bus,
		log:         log,
	}
}

// Submit scores one lead and, when warranted, dispatches the operator
// alert. In strict validation mode an invalid phone or zip rejects the
// request before scoring; in lenient mode the invalid field just earns no
// points. Dispatch failures never surface as an error from here.
func (s *Service) Submit(ctx context.Context, req transport.SubmitLeadRequest) (transport.SubmitLeadResponse, error) {
	lead := s.normalize(ctx, req)

	if s.validation == config.ValidationStrict {
		if !lead.PhoneValid {
			return transport.SubmitLeadResponse{}, apperr.Validation("invalid phone number")
		}
		if !scoring.ValidZip(lead.Zip) {
			return transport.SubmitLeadResponse{}, apperr.Validation("invalid zip format")
		}
	}

	score, reasons := s.rules.Evaluate(lead)
	result := s.policy.Apply(score, reasons)

	log := s.log.WithContext(ctx)
	log.LeadScored(lead.ID, score, result.Label())
	s.bus.Publish(ctx, domain.LeadQualified{
		BaseEvent: events.NewBaseEvent(),
		LeadID:    lead.ID,
		Score:     score,
		Label:     result.Label(),
	})

	outcome := s.coordinator.Dispatch(ctx, lead.ID, score, func() string {
		return format.Alert(lead, result, s.maxAlertLen)
	})
	s.bus.Publish(ctx, domain.LeadDispatched{
		BaseEvent: events.NewBaseEvent(),
		LeadID:    lead.ID,
		Outcome:   outcome,
	})

	resp := transport.SubmitLeadResponse{
		OK:              true,
		ID:              lead.ID,
		Score:           score,
		Tier:            string(result.Tier),
		Qualified:       result.Qualified,
		Reasons:         reasons,
		NormalizedPhone: lead.E164,
		Dispatch:        outcome,
	}
	switch {
	case outcome.SkipReason == domain.SkipGatewayUnconfigured:
		resp.Notice = "messaging gateway not configured; alert skipped"
	case outcome.Error != "":
		resp.Notice = "alert delivery failed; qualification is unaffected"
	}

	return resp, nil
}

// normalize builds the domain Lead: sanitized text fields, digits-only
// phone with classification, and the per-request correlation id. It never
// fails; bad input degrades the fields the rules consume.
func (s *Service) normalize(ctx context.Context, req transport.SubmitLeadRequest) domain.Lead {
	classified := phone.Classify(req.Phone)

	lead := domain.Lead{
		ID:         correlationID(ctx),
		Name:       sanitize.Text(req.Name),
		RawPhone:   req.Phone,
		Phone:      classified.Digits,
		PhoneValid: classified.Valid,
		E164:       classified.E164,
		Email:      sanitize.Text(req.Email),
		Service:    sanitize.Text(req.Service),
		Zip:        sanitize.Text(req.Zip),
		Address:    sanitize.Text(req.Address),
		Source:     sanitize.Text(req.Source),
		Notes:      sanitize.Text(req.Message),
	}

	if req.Budget != nil && req.Budget.Known {
		v := req.Budget.Value
		lead.Budget = &v
	}
	if req.TimeframeDays != nil && req.TimeframeDays.Known {
		v := req.TimeframeDays.Value
		lead.TimeframeDays = &v
	}
	if req.Insurance != nil {
		v := bool(*req.Insurance)
		lead.Insurance = &v
	}

	return lead
}

func correlationID(ctx context.Context) string {
	if id, ok := ctx.Value(logger.RequestIDKey).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}
