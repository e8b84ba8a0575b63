// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/bundlerelay/internal/logging"
)

const defaultDrainTimeout = 10 * time.Second

// RelayServer is the part of *http.Server the relay API service drives.
type RelayServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// RelayAPIService runs the public relay API (REST, webhook intake and the
// event stream upgrade) and drains in-flight upstream relays on shutdown.
//
//	server := &http.Server{Addr: cfg.Server.Addr(), Handler: router.SetupChi()}
//	tree.AddAPIService(services.NewRelayAPIService(server, server.Addr, cfg.Server.ShutdownTimeout))
type RelayAPIService struct {
	server       RelayServer
	addr         string
	drainTimeout time.Duration
}

// NewRelayAPIService creates the service. addr is only used in logs. A
// non-positive drainTimeout falls back to 10s.
func NewRelayAPIService(server RelayServer, addr string, drainTimeout time.Duration) *RelayAPIService {
	if drainTimeout <= 0 {
		drainTimeout = defaultDrainTimeout
	}
	return &RelayAPIService{server: server, addr: addr, drainTimeout: drainTimeout}
}

// Serve implements suture.Service. A listener failure is returned wrapped
// so the supervisor restarts the service; a clean drain returns ctx.Err().
func (s *RelayAPIService) Serve(ctx context.Context) error {
	listenErr := make(chan error, 1)
	go func() {
		err := s.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		listenErr <- err
	}()

	logging.Info().Str("service", s.String()).Str("addr", s.addr).Msg("Relay API listening")

	select {
	case err := <-listenErr:
		if err == nil {
			return nil
		}
		logging.Error().Err(err).Str("service", s.String()).Str("addr", s.addr).Msg("Relay API listener failed")
		return fmt.Errorf("relay api on %s: %w", s.addr, err)

	case <-ctx.Done():
		return s.drain(ctx, listenErr)
	}
}

// drain stops accepting requests and waits up to drainTimeout for open
// relays to finish. ctx is already done, so the deadline hangs off a fresh
// context.
func (s *RelayAPIService) drain(ctx context.Context, listenErr <-chan error) error {
	logging.Info().
		Str("service", s.String()).
		Dur("drain_timeout", s.drainTimeout).
		Msg("Relay API draining")

	started := time.Now()
	drainCtx, cancel := context.WithTimeout(context.Background(), s.drainTimeout)
	defer cancel()

	if err := s.server.Shutdown(drainCtx); err != nil {
		logging.Warn().Err(err).Str("service", s.String()).Msg("Relay API drain incomplete")
		return fmt.Errorf("relay api drain: %w", err)
	}
	<-listenErr

	logging.Info().
		Str("service", s.String()).
		Dur("drained_in", time.Since(started)).
		Msg("Relay API stopped")
	return ctx.Err()
}

// String names the service in supervisor logs.
func (s *RelayAPIService) String() string { return "relay-api" }
