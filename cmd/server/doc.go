// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

/*
Package main is the entry point for the bundlerelay server.

bundlerelay sits between a frontend and the bundle.social API. It accepts
loosely typed query strings and JSON bodies, normalizes them into the
canonical shapes bundle.social expects, and relays the calls with the
server-side API key. It also receives bundle.social webhooks, verifies
their signature, and pushes them to browsers over a WebSocket.

# Application Architecture

The server runs under a Suture v4 supervisor tree:

	RootSupervisor ("bundlerelay")
	├── MessagingSupervisor ("messaging-layer")
	│   ├── EventBusService (in-process watermill bus)
	│   ├── EventStreamService (browser fan-out)
	│   ├── websocket.Bridge (bus -> hub)
	│   └── RedeliveryPruneService (expires webhook signatures)
	└── APISupervisor ("api-layer")
	    └── RelayAPIService (chi router)

Component initialization order:

 1. Configuration: .env files, then Koanf v2 (defaults, YAML, environment)
 2. Logging: zerolog with JSON/console output modes
 3. Upstream client: rate limited HTTP client behind a gobreaker circuit breaker
 4. Event bus, WebSocket hub, webhook handler
 5. Supervisor Tree and HTTP server

# Configuration

Priority: Environment variables > Config file > .env files > Defaults

	PORT=3000
	BUNDLESOCIAL_API_KEY=<key>            # required
	BUNDLESOCIAL_API_URL=https://api.bundle.social/api/v1
	BUNDLESOCIAL_WEBHOOK_SECRET=<secret>  # webhooks are rejected without it
	LOG_LEVEL=info
	LOG_FORMAT=json

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains
in-flight requests, the hub closes client connections, and the event bus
is closed last so the bridge stops without a restart.

# API Documentation

Swagger documentation is served at /swagger/index.html.
*/
package main
