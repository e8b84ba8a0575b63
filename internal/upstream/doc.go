// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

/*
Package upstream is the boundary to the bundle.social REST API.

Client has one method per bundle.social operation the relay uses. Most
methods return the upstream response as json.RawMessage so handlers can
pass it through byte-for-byte; the few the relay inspects (GetTeam,
GetPost, SocialAccountAnalytics) return typed values that still carry
their raw JSON.

Implementations:

  - HTTPClient: net/http with the x-api-key header, an outbound token
    bucket (golang.org/x/time/rate) and per-operation Prometheus metrics
  - CircuitBreakerClient: sony/gobreaker decorator around any Client
  - MockClient: recording test double with canned responses

Errors:

  - *APIError: the upstream answered with a non-2xx status. Status,
    Message and the upstream body are preserved for the HTTP error mapper.
  - ErrCircuitOpen: the breaker rejected the call without contacting
    bundle.social.
  - ErrNotConfigured: no API key was configured.

Only transport failures and 5xx answers count against the breaker; a 4xx
means bundle.social is healthy and rejected the request.

Example:

	client := upstream.NewCircuitBreakerClient(
	    upstream.NewHTTPClient(&cfg.Upstream),
	    cfg.Upstream.CircuitBreaker,
	)
	team, err := client.GetTeam(ctx, "team_123")
*/
package upstream
