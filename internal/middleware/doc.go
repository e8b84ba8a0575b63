// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

/*
Package middleware provides the HTTP middleware shared by every route.

Key Components:

  - RequestID: assigns or propagates X-Request-ID and stores it in the context
  - AccessLog: one structured log line per request, slow requests at warn
  - PrometheusMetrics: request count and latency labelled by chi route pattern
  - Compression: gzip for clients that send Accept-Encoding: gzip

All middleware has the chi signature func(http.Handler) http.Handler.
The router composes them in this order:

	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(cfg.Server.SlowRequestThreshold))
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.Compression)

Response writers are wrapped by a status-capturing writer that forwards
http.Hijacker and http.Flusher, so the websocket route can sit behind the
same stack.
*/
package middleware
