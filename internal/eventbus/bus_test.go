// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package eventbus

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
)

func receive(t *testing.T, ch <-chan *message.Message) *message.Message {
	t.Helper()
	select {
	case msg, ok := <-ch:
		if !ok {
			t.Fatal("subscription closed")
		}
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
	}
	return nil
}

// =====================================================
// Publish / Subscribe
// =====================================================

func TestBus_WebhookRoundTrip(t *testing.T) {
	bus := New(DefaultConfig(), nil)
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, err := bus.Subscribe(ctx, TopicWebhook)
	if err != nil {
		t.Fatal(err)
	}

	received := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	env := WebhookEnvelope{
		ID:         "0b9c1a36-7a4f-4f0e-9d0e-0d7a2b1c3e4f",
		Type:       "post.published",
		Data:       json.RawMessage(`{"postId":"P1"}`),
		ReceivedAt: received,
	}
	if err := bus.PublishWebhook(context.Background(), env); err != nil {
		t.Fatal(err)
	}

	msg := receive(t, ch)
	msg.Ack()
	if msg.UUID != env.ID {
		t.Errorf("uuid = %q, want %q", msg.UUID, env.ID)
	}
	got, err := DecodeWebhook(msg)
	if err != nil {
		t.Fatal(err)
	}
	if got.Type != env.Type || string(got.Data) != string(env.Data) || !got.ReceivedAt.Equal(received) {
		t.Errorf("envelope = %+v", got)
	}
}

func TestBus_FanOut(t *testing.T) {
	bus := New(Config{OutputBuffer: 4}, nil)
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	a, err := bus.Subscribe(ctx, "t")
	if err != nil {
		t.Fatal(err)
	}
	b, err := bus.Subscribe(ctx, "t")
	if err != nil {
		t.Fatal(err)
	}

	if err := bus.PublishJSON(context.Background(), "t", "m1", map[string]int{"n": 1}); err != nil {
		t.Fatal(err)
	}
	for _, ch := range []<-chan *message.Message{a, b} {
		msg := receive(t, ch)
		msg.Ack()
		if string(msg.Payload) != `{"n":1}` {
			t.Errorf("payload = %s", msg.Payload)
		}
	}
}

func TestBus_NoSubscribersIsNotAnError(t *testing.T) {
	bus := New(DefaultConfig(), nil)
	defer bus.Close()

	if err := bus.PublishJSON(context.Background(), TopicWebhook, "m1", struct{}{}); err != nil {
		t.Errorf("publish without subscribers: %v", err)
	}
}

func TestBus_Closed(t *testing.T) {
	bus := New(DefaultConfig(), nil)

	ch, err := bus.Subscribe(context.Background(), TopicWebhook)
	if err != nil {
		t.Fatal(err)
	}
	if err := bus.Close(); err != nil {
		t.Fatal(err)
	}
	if err := bus.Close(); err != nil {
		t.Errorf("second close: %v", err)
	}

	select {
	case _, ok := <-ch:
		if ok {
			t.Error("expected closed channel")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("subscription not closed")
	}

	if err := bus.PublishJSON(context.Background(), TopicWebhook, "m", struct{}{}); !errors.Is(err, ErrClosed) {
		t.Errorf("publish after close = %v", err)
	}
	if _, err := bus.Subscribe(context.Background(), TopicWebhook); !errors.Is(err, ErrClosed) {
		t.Errorf("subscribe after close = %v", err)
	}
}

func TestDecodeWebhook_Malformed(t *testing.T) {
	if _, err := DecodeWebhook(message.NewMessage("x", []byte("nope"))); err == nil {
		t.Error("expected decode error")
	}
}
