// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

/*
Package services provides suture.Service wrappers for relay components.

Each wrapper translates a component lifecycle (ListenAndServe, RunWithContext,
Close) into suture's context-aware Serve pattern:

	type Service interface {
	    Serve(ctx context.Context) error
	}

# Available Services

Relay API (RelayAPIService):
  - Wraps *http.Server with graceful shutdown
  - Configurable drain timeout for in-flight bundle.social relays

Event Stream (EventStreamService):
  - Wraps websocket.Hub; closes every subscriber on shutdown

Redelivery Pruner (RedeliveryPruneService):
  - Drops expired webhook signatures on a ticker and reports the set size

Event Bus (EventBusService):
  - Owns the in-process event bus and closes it when the tree stops,
    which ends every subscription

Every wrapper implements fmt.Stringer so suture log lines name the service.
*/
package services
