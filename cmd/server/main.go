// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/tomtom215/bundlerelay/docs" // Import generated swagger docs
	"github.com/tomtom215/bundlerelay/internal/api"
	"github.com/tomtom215/bundlerelay/internal/config"
	"github.com/tomtom215/bundlerelay/internal/eventbus"
	"github.com/tomtom215/bundlerelay/internal/logging"
	"github.com/tomtom215/bundlerelay/internal/supervisor"
	"github.com/tomtom215/bundlerelay/internal/supervisor/services"
	"github.com/tomtom215/bundlerelay/internal/upstream"
	"github.com/tomtom215/bundlerelay/internal/webhook"
	ws "github.com/tomtom215/bundlerelay/internal/websocket"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("upstream", cfg.Upstream.BaseURL).
		Str("api_key", logging.RedactSecret(cfg.Upstream.APIKey)).
		Str("environment", cfg.Server.Environment).
		Bool("circuit_breaker", cfg.Upstream.CircuitBreaker.Enabled).
		Msg("Configuration loaded")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, cfg)
	stop()
	os.Exit(code)
}

// newUpstreamClient builds the bundle.social client, behind a circuit
// breaker when one is configured.
func newUpstreamClient(cfg *config.Config) upstream.Client {
	client := upstream.NewHTTPClient(&cfg.Upstream)
	if !cfg.Upstream.CircuitBreaker.Enabled {
		return client
	}
	return upstream.NewCircuitBreakerClient(client, cfg.Upstream.CircuitBreaker)
}

// run wires every component into the supervisor tree and blocks until ctx
// is canceled. It returns the process exit code.
func run(ctx context.Context, cfg *config.Config) int {
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureDecay:     30,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Error().Err(err).Msg("Failed to create supervisor tree")
		return 1
	}

	bus := eventbus.New(eventbus.DefaultConfig(), eventbus.NewLogger(logging.Logger()))
	wsHub := ws.NewHub()

	handler := api.NewHandler(newUpstreamClient(cfg), cfg, wsHub)
	webhooks := webhook.NewHandler(cfg.Webhook, bus)
	router := api.NewRouter(handler, webhooks, cfg)

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	// Messaging layer: bus, hub, and the bridge feeding webhook events
	// from the former into the latter.
	tree.AddMessagingService(services.NewEventBusService(bus))
	tree.AddMessagingService(services.NewEventStreamService(wsHub))
	tree.AddMessagingService(ws.NewBridge(bus, wsHub))
	if cfg.Webhook.DedupWindow > 0 {
		tree.AddMessagingService(services.NewRedeliveryPruneService(webhooks, cfg.Webhook.DedupWindow))
	}

	tree.AddAPIService(services.NewRelayAPIService(server, server.Addr, cfg.Server.ShutdownTimeout))

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	code := 0
	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
		code = 1
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("Application stopped")
	return code
}
