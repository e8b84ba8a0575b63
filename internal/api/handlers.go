// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package api

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tomtom215/bundlerelay/internal/config"
	"github.com/tomtom215/bundlerelay/internal/logging"
	"github.com/tomtom215/bundlerelay/internal/upstream"
	ws "github.com/tomtom215/bundlerelay/internal/websocket"
)

// Handler contains dependencies for API handlers
//
// Handler methods are split across files by resource:
//   - handlers.go: Handler struct, constructor, websocket upgrade (this file)
//   - handlers_helpers.go: body decoding and payload helpers
//   - handlers_health.go: root, liveness, health and organization
//   - handlers_team.go, handlers_social_account.go, handlers_upload.go
//   - handlers_post.go, handlers_comment.go, handlers_analytics.go
//   - handlers_misc.go: timezones, platforms, server info
//   - handlers_instagram.go: the /api/instagram shortcuts
type Handler struct {
	client    upstream.Client
	config    *config.Config
	wsHub     *ws.Hub
	startTime time.Time
}

// NewHandler creates a new API handler.
//
// client is usually the circuit-breaker wrapped HTTP client; tests pass an
// upstream.MockClient. cfg supplies the defaults used when a request leaves
// a field out and must not be nil. wsHub may be nil, in which case the event
// stream endpoint answers 503.
func NewHandler(client upstream.Client, cfg *config.Config, wsHub *ws.Hub) *Handler {
	return &Handler{
		client:    client,
		config:    cfg,
		wsHub:     wsHub,
		startTime: time.Now(),
	}
}

// getUpgrader creates a WebSocket upgrader with origin checking and a
// handshake timeout.
func (h *Handler) getUpgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:   1024,
		WriteBufferSize:  1024,
		CheckOrigin:      h.checkWebSocketOrigin,
		HandshakeTimeout: 10 * time.Second,
	}
}

// checkWebSocketOrigin allows same-host connections, non-browser clients and
// the configured CORS origins.
func (h *Handler) checkWebSocketOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}

	for _, allowed := range h.config.Security.CORSOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}

	if origin == "http://"+r.Host || origin == "https://"+r.Host {
		return true
	}

	logging.Warn().Str("origin", logging.SanitizeLogValue(origin)).Msg("WebSocket connection rejected: origin not allowed")
	return false
}

// Events upgrades the connection and streams verified webhook events.
//
// @Summary Stream webhook events
// @Description Upgrades to a websocket that receives every verified bundle.social webhook event
// @Tags Events
// @Router /api/events [get]
func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	if h.wsHub == nil {
		writeError(w, r, newHTTPError(http.StatusServiceUnavailable, "event stream is not available"))
		return
	}

	upgrader := h.getUpgrader()
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the HTTP error.
		logging.Ctx(r.Context()).Debug().Err(err).Msg("WebSocket upgrade failed")
		return
	}

	client := ws.NewClient(h.wsHub, conn)
	if !h.wsHub.TryRegister(r.Context(), client) {
		logging.Ctx(r.Context()).Warn().Msg("Event stream hub not running, closing connection")
		_ = conn.Close()
		return
	}
	client.Start()
}
