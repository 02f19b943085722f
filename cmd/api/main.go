package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"leadgate_backend/internal/autoreply"
	apphttp "leadgate_backend/internal/http"
	"leadgate_backend/internal/http/router"
	"leadgate_backend/internal/leads"
	"leadgate_backend/internal/leads/dispatch"
	"leadgate_backend/internal/leads/domain"
	"leadgate_backend/internal/mailalert"
	"leadgate_backend/internal/sms"
	"leadgate_backend/platform/config"
	"leadgate_backend/platform/events"
	"leadgate_backend/platform/logger"
	"leadgate_backend/platform/validator"

	"golang.org/x/sync/errgroup"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Event bus for decoupled audit logging
	eventBus := events.NewInMemoryBus(log)
	subscribeAuditLog(eventBus, log)

	// Shared validator instance for dependency injection
	val := validator.New()

	gateway := buildGateway(cfg, log)
	if gateway == nil {
		log.Info("messaging gateway not configured; alerts will be skipped")
	} else {
		log.Info("messaging gateway configured", "channel", gateway.Channel())
	}

	leadsModule, err := leads.NewModule(cfg, gateway, eventBus, val, log)
	if err != nil {
		log.Error("failed to initialize leads module", "error", err)
		panic("failed to initialize leads module: " + err.Error())
	}

	app := &apphttp.App{
		Config: cfg,
		Logger: log,
		Modules: []apphttp.Module{
			leadsModule,
			autoreply.NewModule(log),
		},
	}

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router.New(app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// buildGateway selects the messaging gateway from configuration. Returning
// nil (gateway absent) is a supported state, not an error.
func buildGateway(cfg *config.Config, log *logger.Logger) dispatch.Gateway {
	switch cfg.GetAlertChannel() {
	case config.ChannelTwilio:
		if client := sms.NewClient(cfg, log); client != nil {
			return client
		}
	case config.ChannelSMTP:
		if sender := mailalert.NewSender(cfg); sender != nil {
			return sender
		}
	}
	return nil
}

// subscribeAuditLog logs every qualification and dispatch event, keeping an
// operator-readable audit trail without any persistence.
func subscribeAuditLog(bus events.Bus, log *logger.Logger) {
	bus.Subscribe(domain.EventLeadQualified, events.HandlerFunc(func(_ context.Context, e events.Event) error {
		if ev, ok := e.(domain.LeadQualified); ok {
			log.Info("audit_lead_qualified", "lead_id", ev.LeadID, "score", ev.Score, "label", ev.Label)
		}
		return nil
	}))
	bus.Subscribe(domain.EventLeadDispatched, events.HandlerFunc(func(_ context.Context, e events.Event) error {
		if ev, ok := e.(domain.LeadDispatched); ok {
			log.Info("audit_lead_dispatched",
				"lead_id", ev.LeadID,
				"attempted", ev.Outcome.Attempted,
				"sent", ev.Outcome.Sent,
				"skip_reason", ev.Outcome.SkipReason,
			)
		}
		return nil
	}))
}
