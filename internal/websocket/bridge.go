// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package websocket

import (
	"context"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/bundlerelay/internal/eventbus"
	"github.com/tomtom215/bundlerelay/internal/logging"
	"github.com/tomtom215/bundlerelay/internal/metrics"
)

// Bridge outcomes recorded in metrics.
const (
	bridgeForwarded   = "forwarded"
	bridgeUndelivered = "undelivered"
	bridgeMalformed   = "malformed"
)

// Subscriber is the part of the event bus the bridge consumes.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error)
}

// WebhookBroadcaster receives decoded webhook envelopes.
type WebhookBroadcaster interface {
	BroadcastWebhook(env eventbus.WebhookEnvelope) bool
}

// Bridge forwards webhook events from the bus to the hub.
type Bridge struct {
	bus Subscriber
	hub WebhookBroadcaster
}

// NewBridge creates a bridge.
func NewBridge(bus Subscriber, hub WebhookBroadcaster) *Bridge {
	return &Bridge{bus: bus, hub: hub}
}

// String names the bridge in supervisor logs.
func (b *Bridge) String() string { return "websocket-bridge" }

// Serve implements suture.Service. It returns suture.ErrDoNotRestart once
// the bus is closed, since a new subscription would fail the same way.
func (b *Bridge) Serve(ctx context.Context) error {
	msgs, err := b.bus.Subscribe(ctx, eventbus.TopicWebhook)
	if errors.Is(err, eventbus.ErrClosed) {
		return suture.ErrDoNotRestart
	}
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", eventbus.TopicWebhook, err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-msgs:
			if !ok {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				return suture.ErrDoNotRestart
			}
			b.handle(msg)
		}
	}
}

// handle always acks: a malformed envelope would fail again on redelivery.
func (b *Bridge) handle(msg *message.Message) {
	defer msg.Ack()

	env, err := eventbus.DecodeWebhook(msg)
	if err != nil {
		metrics.RecordBridgeMessage(bridgeMalformed)
		logging.Warn().Err(err).Str("message_id", msg.UUID).Msg("Dropping malformed webhook envelope")
		return
	}
	if !b.hub.BroadcastWebhook(env) {
		metrics.RecordBridgeMessage(bridgeUndelivered)
		return
	}
	metrics.RecordBridgeMessage(bridgeForwarded)
}
