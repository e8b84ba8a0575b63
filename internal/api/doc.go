// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

/*
Package api provides the HTTP surface of the bundle.social relay.

Every handler follows the same shape: read the request (query string, path
parameters, JSON body or multipart form), normalize it with package params,
assemble an allow-listed upstream payload, validate that payload, call
upstream.Client and relay the answer.

Key Components:

  - Router: chi route tree and middleware stack
  - Handler: request handlers, one file per bundle.social resource
  - ChiMiddleware: CORS and per-route rate limits from the security config
  - Error mapping: a single mapError turns normalizer, validation, upstream
    and circuit breaker errors into status codes and ErrorBody responses

API Groups:

1. /api/v1: team, social-account, upload, post, analytics, comment and misc
   endpoints mirroring bundle.social resources.

2. /api/instagram: shortcuts fixed to the INSTAGRAM platform that fill in
   configured defaults (team name and tier, post status, schedule offset,
   share-to-feed).

3. /api/webhook and /api/events: signed webhook intake, served by package
   webhook, and the websocket stream fed from the event bus.

Usage Example:

	handler := api.NewHandler(client, cfg, hub)
	router := api.NewRouter(handler, webhookHandler, cfg)
	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: router.SetupChi()}

Request bodies are decoded into per-endpoint structs with untyped fields so
that the normalizer sees what the client actually sent. Fields that are not
part of a struct are dropped and never forwarded.

Thread Safety:

Handlers are stateless apart from the immutable config, the upstream client
and the websocket hub, all of which are safe for concurrent use.
*/
package api
