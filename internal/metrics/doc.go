// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

/*
Package metrics defines the Prometheus collectors exported at /metrics.

Collectors are registered with promauto at package init:

  - api_*: inbound requests by method, route pattern and status
  - upstream_*: bundle.social calls by operation and status class, plus
    outbound rate limiter wait time
  - circuit_breaker_*: breaker state, results and transitions
  - webhook_events_total, event_bus_publish_total: webhook intake
  - webhook_redelivery_*: size and pruning of the redelivery set
  - event_bridge_messages_total: bus messages by bridge outcome
  - websocket_*: event stream connections and messages

Record* helpers keep label values consistent across call sites.
*/
package metrics
