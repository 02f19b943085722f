// Package leads provides the lead qualification bounded context module.
// This file defines the module that encapsulates setup and route registration.
package leads

import (
	apphttp "leadgate_backend/internal/http"
	"leadgate_backend/internal/leads/dispatch"
	"leadgate_backend/internal/leads/handler"
	"leadgate_backend/internal/leads/scoring"
	"leadgate_backend/internal/leads/service"
	"leadgate_backend/platform/config"
	"leadgate_backend/platform/events"
	"leadgate_backend/platform/logger"
	"leadgate_backend/platform/validator"
)

// Config combines the config interfaces the leads module needs.
type Config interface {
	config.QualifyConfig
	config.DispatchConfig
}

// Module is the leads bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
}

// NewModule creates and initializes the leads module with all its
// dependencies. The gateway may be nil when no messaging channel is
// configured; qualification still works and dispatch reports the skip.
func NewModule(cfg Config, gateway dispatch.Gateway, bus events.Bus, val *validator.Validator, log *logger.Logger) (*Module, error) {
	rules, err := scoring.NewRuleSet(cfg)
	if err != nil {
		return nil, err
	}

	policy := scoring.NewPolicy(cfg)
	coordinator := dispatch.New(gateway, cfg, log)
	svc := service.New(rules, policy, coordinator, cfg, cfg, bus, log)

	return &Module{
		handler: handler.New(svc, val),
	}, nil
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "leads"
}

// RegisterRoutes mounts lead routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/leads", m.handler.HandleSubmitLead)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
