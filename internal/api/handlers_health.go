// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/bundlerelay/internal/logging"
)

// rootMessage is the plain-text answer of GET /.
const rootMessage = "bundle.social Instagram backend is running"

// Root answers GET / with a plain liveness string.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(rootMessage)); err != nil {
		logging.Debug().Err(err).Msg("Failed to write root response")
	}
}

// liveResponse is the body of the local liveness check.
type liveResponse struct {
	Status         string  `json:"status"`
	UptimeSeconds  float64 `json:"uptime_seconds"`
	CircuitBreaker string  `json:"circuit_breaker,omitempty"`
}

// breakerStater is implemented by the circuit-breaker client.
type breakerStater interface {
	State() string
}

// HealthLive reports that the process is serving requests. It never calls
// bundle.social.
//
// @Summary Local liveness check
// @Tags Health
// @Produce json
// @Success 200 {object} liveResponse
// @Router /api/v1/health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	resp := liveResponse{
		Status:        "alive",
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	}
	if cb, ok := h.client.(breakerStater); ok {
		resp.CircuitBreaker = cb.State()
	}
	writeJSON(w, http.StatusOK, resp)
}

// Health relays the bundle.social health check.
//
// @Summary Upstream health
// @Tags Health
// @Produce json
// @Success 200 {object} object
// @Failure 503 {object} ErrorBody
// @Router /api/v1/health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	raw, err := h.client.Health(r.Context())
	respond(w, r, http.StatusOK, raw, err)
}

// Organization relays the organization the API key belongs to.
//
// @Summary Organization details
// @Tags Organization
// @Produce json
// @Success 200 {object} object
// @Router /api/v1/organization [get]
func (h *Handler) Organization(w http.ResponseWriter, r *http.Request) {
	raw, err := h.client.Organization(r.Context())
	respond(w, r, http.StatusOK, raw, err)
}
