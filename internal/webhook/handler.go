// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package webhook

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tomtom215/bundlerelay/internal/cache"
	"github.com/tomtom215/bundlerelay/internal/config"
	"github.com/tomtom215/bundlerelay/internal/eventbus"
	"github.com/tomtom215/bundlerelay/internal/logging"
	"github.com/tomtom215/bundlerelay/internal/metrics"
)

// SignatureHeader carries the body signature.
const SignatureHeader = "x-signature"

const defaultMaxBodyBytes = 2 << 20

// Webhook outcomes recorded in metrics.
const (
	outcomeAccepted         = "accepted"
	outcomeDuplicate        = "duplicate"
	outcomeMissingSignature = "missing_signature"
	outcomeInvalidSignature = "invalid_signature"
	outcomeMalformed        = "malformed"
	outcomeTooLarge         = "too_large"
)

// Event is a bundle.social webhook delivery.
type Event struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Publisher receives accepted events.
type Publisher interface {
	PublishWebhook(ctx context.Context, env eventbus.WebhookEnvelope) error
}

type receivedResponse struct {
	Received  bool   `json:"received"`
	Type      string `json:"type"`
	Duplicate bool   `json:"duplicate,omitempty"`
}

type errorBody struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// Handler verifies and publishes webhook deliveries.
type Handler struct {
	secret    []byte
	maxBody   int64
	publisher Publisher
	seen      *cache.Deduper // nil when redelivery detection is off
	now       func() time.Time
}

// NewHandler creates a handler. A nil publisher acknowledges events
// without forwarding them.
func NewHandler(cfg config.WebhookConfig, publisher Publisher) *Handler {
	maxBody := cfg.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}
	h := &Handler{
		secret:    []byte(cfg.Secret),
		maxBody:   maxBody,
		publisher: publisher,
		now:       time.Now,
	}
	if cfg.DedupWindow > 0 {
		h.seen = cache.NewDeduper(cfg.DedupCapacity, cfg.DedupWindow)
	}
	return h
}

// PruneRedeliveries drops remembered signatures whose window has passed.
// It returns how many were removed and how many remain. Both are zero when
// redelivery detection is off.
func (h *Handler) PruneRedeliveries() (removed, remaining int) {
	if h.seen == nil {
		return 0, 0
	}
	removed = h.seen.Prune()
	return removed, h.seen.Len()
}

// ServeHTTP handles POST /api/webhook. A delivery whose signature was
// accepted within the dedup window is acknowledged but not republished.
//
// @Summary Receive bundle.social webhook
// @Tags Webhook
// @Accept json
// @Produce json
// @Param x-signature header string true "Hex HMAC-SHA256 of the raw body"
// @Success 200 {object} receivedResponse
// @Failure 400 {object} errorBody
// @Failure 401 {object} errorBody
// @Router /api/webhook [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	signature := r.Header.Get(SignatureHeader)
	if signature == "" {
		h.reject(w, r, http.StatusBadRequest, "BAD_REQUEST", "Missing x-signature header", outcomeMissingSignature)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBody))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.reject(w, r, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "Webhook body too large", outcomeTooLarge)
			return
		}
		h.reject(w, r, http.StatusBadRequest, "BAD_REQUEST", "Could not read webhook body", outcomeMalformed)
		return
	}

	if !Verify(h.secret, body, signature) {
		h.reject(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid webhook signature", outcomeInvalidSignature)
		return
	}

	var event Event
	if err := json.Unmarshal(body, &event); err != nil {
		h.reject(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid webhook payload", outcomeMalformed)
		return
	}

	if h.seen != nil && h.seen.Seen(strings.ToLower(strings.TrimSpace(signature))) {
		logging.Ctx(r.Context()).Debug().
			Str("event_type", logging.SanitizeLogValue(event.Type)).
			Msg("Duplicate webhook delivery")
		metrics.RecordWebhookEvent(event.Type, outcomeDuplicate)
		writeJSON(w, http.StatusOK, receivedResponse{Received: true, Type: event.Type, Duplicate: true})
		return
	}

	env := eventbus.WebhookEnvelope{
		ID:         uuid.NewString(),
		Type:       event.Type,
		Data:       event.Data,
		ReceivedAt: h.now().UTC(),
	}

	logging.Ctx(r.Context()).Info().
		Str("event_id", env.ID).
		Str("event_type", logging.SanitizeLogValue(event.Type)).
		Int("bytes", len(body)).
		Msg("Webhook received")

	if h.publisher != nil {
		// Detached context: the delivery is already acknowledged by the time
		// subscribers see it.
		if err := h.publisher.PublishWebhook(context.WithoutCancel(r.Context()), env); err != nil {
			logging.Ctx(r.Context()).Error().Err(err).Str("event_id", env.ID).Msg("Failed to publish webhook event")
		}
	}

	metrics.RecordWebhookEvent(event.Type, outcomeAccepted)
	writeJSON(w, http.StatusOK, receivedResponse{Received: true, Type: event.Type})
}

func (h *Handler) reject(w http.ResponseWriter, r *http.Request, status int, code, message, outcome string) {
	metrics.RecordWebhookEvent("", outcome)
	logging.Ctx(r.Context()).Warn().
		Int("status", status).
		Str("outcome", outcome).
		Str("remote_addr", r.RemoteAddr).
		Msg("Webhook rejected")

	writeJSON(w, status, errorBody{
		Code:      code,
		Message:   message,
		RequestID: logging.RequestIDFromContext(r.Context()),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
