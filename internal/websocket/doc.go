// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

/*
Package websocket streams verified bundle.social webhook events to browser
clients.

Key Components:

  - Hub: tracks connected clients and fans messages out to them
  - Client: one connection with a read goroutine and a write goroutine
  - Bridge: subscribes to the event bus and hands each webhook to the hub

Architecture:

	┌──────────┐  bundle.webhook  ┌──────────┐
	│ eventbus │ ───────────────▶ │  Bridge  │
	└──────────┘                  └────┬─────┘
	                                   │ BroadcastWebhook
	                              ┌────▼─────┐
	                              │   Hub    │
	                              └────┬─────┘
	                    ┌──────────────┼──────────────┐
	                 Client1        Client2        Client3

Message Types:

  - webhook: one accepted delivery, {"type","data","received_at"}
  - ping / pong: client keepalive

Clients that cannot keep up are dropped rather than slowing the hub.

Supervision:

Hub.RunWithContext and Bridge.Serve both return when their context is
canceled; both run under the messaging branch of the supervisor tree.
Hub.TryRegister refuses clients while no run loop is active, so the
/api/events handler never blocks on a stopped hub.
*/
package websocket
