// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package eventbus

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/goccy/go-json"

	"github.com/tomtom215/bundlerelay/internal/metrics"
)

// TopicWebhook carries accepted bundle.social webhook deliveries.
const TopicWebhook = "bundle.webhook"

// ErrClosed is returned by Publish and Subscribe after Close.
var ErrClosed = errors.New("event bus is closed")

// WebhookEnvelope is the payload published on TopicWebhook.
type WebhookEnvelope struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Data       json.RawMessage `json:"data,omitempty"`
	ReceivedAt time.Time       `json:"received_at"`
}

// Config configures the in-process bus.
type Config struct {
	// OutputBuffer is the per-subscriber channel buffer.
	OutputBuffer int64
}

// DefaultConfig returns a buffer large enough to absorb webhook bursts.
func DefaultConfig() Config {
	return Config{OutputBuffer: 256}
}

// Bus is a thin wrapper over a Watermill GoChannel that records publish
// metrics and refuses work after Close.
type Bus struct {
	pubsub *gochannel.GoChannel
	logger watermill.LoggerAdapter

	mu     sync.RWMutex
	closed bool
}

// New creates a bus. A nil logger discards Watermill's own logs.
func New(cfg Config, logger watermill.LoggerAdapter) *Bus {
	if logger == nil {
		logger = watermill.NopLogger{}
	}
	if cfg.OutputBuffer <= 0 {
		cfg.OutputBuffer = DefaultConfig().OutputBuffer
	}

	return &Bus{
		pubsub: gochannel.NewGoChannel(gochannel.Config{
			OutputChannelBuffer: cfg.OutputBuffer,
		}, logger),
		logger: logger,
	}
}

// Publish sends msg to every current subscriber of topic.
func (b *Bus) Publish(ctx context.Context, topic string, msg *message.Message) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return ErrClosed
	}

	msg.SetContext(ctx)
	err := b.pubsub.Publish(topic, msg)
	metrics.RecordEventPublish(topic, err)
	if err != nil {
		return fmt.Errorf("publish to %s: %w", topic, err)
	}
	return nil
}

// PublishJSON marshals v and publishes it under the given message ID.
func (b *Bus) PublishJSON(ctx context.Context, topic, id string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", topic, err)
	}
	return b.Publish(ctx, topic, message.NewMessage(id, payload))
}

// PublishWebhook publishes an envelope on TopicWebhook.
func (b *Bus) PublishWebhook(ctx context.Context, env WebhookEnvelope) error {
	return b.PublishJSON(ctx, TopicWebhook, env.ID, env)
}

// Subscribe returns the message stream for topic. The channel closes when
// ctx is canceled or the bus is closed. Every message must be acked or
// nacked.
func (b *Bus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return nil, ErrClosed
	}
	return b.pubsub.Subscribe(ctx, topic)
}

// Close stops the bus and closes all subscriber channels. It is safe to
// call more than once.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	b.closed = true
	return b.pubsub.Close()
}

// DecodeWebhook parses a TopicWebhook payload.
func DecodeWebhook(msg *message.Message) (WebhookEnvelope, error) {
	var env WebhookEnvelope
	if err := json.Unmarshal(msg.Payload, &env); err != nil {
		return WebhookEnvelope{}, fmt.Errorf("decode webhook envelope %s: %w", msg.UUID, err)
	}
	return env, nil
}
