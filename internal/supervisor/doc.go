// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

/*
Package supervisor runs the relay's long-lived services under a suture v4
supervisor tree.

# Overview

	RootSupervisor ("bundlerelay")
	├── MessagingSupervisor ("messaging-layer")
	│   ├── EventBusService
	│   ├── EventStreamService
	│   ├── websocket.Bridge
	│   └── RedeliveryPruneService
	└── APISupervisor ("api-layer")
	    └── RelayAPIService

A crash in the event fan-out restarts only the messaging layer; the HTTP
server keeps relaying requests to bundle.social.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddMessagingService(services.NewEventBusService(bus))
	tree.AddMessagingService(services.NewEventStreamService(hub))
	tree.AddMessagingService(websocket.NewBridge(bus, hub))
	tree.AddMessagingService(services.NewRedeliveryPruneService(webhooks, cfg.Webhook.DedupWindow))
	tree.AddAPIService(services.NewRelayAPIService(server, server.Addr, cfg.Server.ShutdownTimeout))

	errCh := tree.ServeBackground(ctx)

# Failure Handling

Each failure increments a counter that decays over FailureDecay seconds.
Once the counter passes FailureThreshold the supervisor waits
FailureBackoff before the next restart.

Return behavior expected from services:
  - ctx.Err() after cancellation: normal shutdown
  - suture.ErrDoNotRestart: stopped for good (closed event bus)
  - any other error: crashed, restart

# Debugging Shutdown Issues

	report, err := tree.UnstoppedServiceReport()

lists services that ignored cancellation past ShutdownTimeout.

Supervisor events (start, stop, failure, backoff) are logged through
sutureslog into the zerolog-backed slog handler from internal/logging.
*/
package supervisor
