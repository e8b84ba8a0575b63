// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package services

import (
	"context"
	"fmt"

	"github.com/thejerf/suture/v4"
)

// Closer is satisfied by *eventbus.Bus.
type Closer interface {
	Close() error
}

// EventBusService holds the event bus open while the tree runs and closes
// it on shutdown. It is never restarted: a closed bus cannot be reopened.
type EventBusService struct {
	bus  Closer
	name string
}

// NewEventBusService creates the service.
func NewEventBusService(bus Closer) *EventBusService {
	return &EventBusService{bus: bus, name: "event-bus"}
}

// Serve implements suture.Service.
func (e *EventBusService) Serve(ctx context.Context) error {
	<-ctx.Done()
	if err := e.bus.Close(); err != nil {
		return fmt.Errorf("close event bus: %w", err)
	}
	return suture.ErrDoNotRestart
}

// String implements fmt.Stringer for suture logs.
func (e *EventBusService) String() string {
	return e.name
}
