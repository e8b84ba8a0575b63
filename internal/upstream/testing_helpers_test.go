// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package upstream

import (
	"golang.org/x/time/rate"
)

// newTestLimiter returns a limiter with no tokens left, so every Wait blocks
// until its context ends.
func newTestLimiter() *rate.Limiter {
	l := rate.NewLimiter(rate.Limit(0.001), 1)
	l.Allow()
	return l
}
