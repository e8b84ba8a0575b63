// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

// Package eventbus carries verified webhook deliveries from the HTTP
// handler to in-process consumers.
//
// The bus is a Watermill GoChannel pub/sub. Publishing never blocks on a
// slow consumer and messages published while nobody is subscribed are
// dropped; bundle.social retries undelivered webhooks, so the relay keeps
// no durable log of its own.
//
//	┌──────────────┐   publish    ┌──────────────┐   subscribe   ┌──────────────┐
//	│   webhook    │ ───────────▶ │  GoChannel   │ ────────────▶ │ websocket    │
//	│   handler    │  bundle.*    │     bus      │               │   bridge     │
//	└──────────────┘              └──────────────┘               └──────────────┘
//
// # Topics
//
//   - TopicWebhook ("bundle.webhook"): one WebhookEnvelope per accepted
//     delivery, keyed by a fresh UUID.
//
// # Logging
//
// NewLogger adapts the process zerolog logger to watermill.LoggerAdapter so
// Watermill's internal logs share the relay's format and level.
package eventbus
