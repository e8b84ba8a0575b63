// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/tomtom215/bundlerelay/internal/logging"
)

// StreamHub is satisfied by *websocket.Hub.
type StreamHub interface {
	RunWithContext(ctx context.Context) error
	GetClientCount() int
}

// EventStreamService runs the hub that pushes webhook events to
// /api/v1/events subscribers.
type EventStreamService struct {
	hub StreamHub
}

// NewEventStreamService creates the service.
func NewEventStreamService(hub StreamHub) *EventStreamService {
	return &EventStreamService{hub: hub}
}

// Serve implements suture.Service.
func (e *EventStreamService) Serve(ctx context.Context) error {
	err := e.hub.RunWithContext(ctx)
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	logging.Error().
		Err(err).
		Str("service", e.String()).
		Int("subscribers", e.hub.GetClientCount()).
		Msg("Event stream hub stopped unexpectedly")
	return fmt.Errorf("event stream hub: %w", err)
}

// String names the service in supervisor logs.
func (e *EventStreamService) String() string { return "event-stream" }
