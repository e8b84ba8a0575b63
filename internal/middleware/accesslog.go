// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package middleware

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/bundlerelay/internal/logging"
)

// AccessLog logs one line per request. Requests slower than slowThreshold
// are logged at warn level; 5xx responses at error level; health and
// metrics scrapes at debug level.
func AccessLog(slowThreshold time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapper := newStatusWriter(w)

			next.ServeHTTP(wrapper, r)

			duration := time.Since(start)
			logger := logging.Ctx(r.Context())

			var event *zerolog.Event
			switch {
			case wrapper.statusCode >= http.StatusInternalServerError:
				event = logger.Error()
			case slowThreshold > 0 && duration > slowThreshold:
				event = logger.Warn().Bool("slow", true)
			case quietPath(r.URL.Path):
				event = logger.Debug()
			default:
				event = logger.Info()
			}

			event.
				Str("method", r.Method).
				Str("path", logging.SanitizeLogValue(r.URL.Path)).
				Str("route", routePattern(r)).
				Int("status", wrapper.statusCode).
				Int64("bytes", wrapper.bytes).
				Int64("duration_ms", duration.Milliseconds()).
				Str("remote_addr", r.RemoteAddr).
				Msg("HTTP request")
		})
	}
}

func quietPath(path string) bool {
	switch path {
	case "/", "/metrics", "/api/health", "/api/health/live", "/api/health/ready":
		return true
	}
	return false
}
