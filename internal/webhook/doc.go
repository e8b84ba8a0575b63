// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

// Package webhook receives bundle.social webhook deliveries.
//
// A delivery is accepted only when its x-signature header carries the hex
// HMAC-SHA256 of the raw request body keyed by the configured webhook
// secret. Accepted events are published on the event bus and acknowledged
// with {"received": true, "type": ...}.
package webhook
