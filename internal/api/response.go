// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/bundlerelay/internal/logging"
)

// Error codes for API responses
const (
	ErrCodeBadRequest         = "BAD_REQUEST"
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrCodePayloadTooLarge    = "PAYLOAD_TOO_LARGE"
	ErrCodeTooManyRequests    = "TOO_MANY_REQUESTS"
	ErrCodeInternalError      = "INTERNAL_ERROR"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeUpstream           = "UPSTREAM_ERROR"
)

// ErrorBody is the JSON body of every error response.
type ErrorBody struct {
	// Code is a machine-readable error code
	Code string `json:"code"`

	// Message is a human-readable error message
	Message string `json:"message"`

	// Details carries the upstream error body or validation details
	Details any `json:"details,omitempty"`

	// RequestID is the request ID for tracing
	RequestID string `json:"request_id,omitempty"`
}

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	writeBytes(w, status, data)
}

// writeRaw passes an upstream body through unchanged. An empty body becomes
// 204 No Content regardless of status.
func writeRaw(w http.ResponseWriter, status int, raw json.RawMessage) {
	if len(raw) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeBytes(w, status, raw)
}

func writeBytes(w http.ResponseWriter, status int, data []byte) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Debug().Err(err).Msg("Failed to write JSON response")
	}
}

// respond writes a relayed upstream result, or the mapped error.
func respond(w http.ResponseWriter, r *http.Request, status int, raw json.RawMessage, err error) {
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeRaw(w, status, raw)
}

// writeError maps err and writes it. Server-side failures are logged at
// error level; client errors only at debug.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := mapError(err)
	requestID := logging.RequestIDFromContext(r.Context())

	event := logging.Ctx(r.Context()).Debug()
	if resp.Status >= http.StatusInternalServerError {
		event = logging.Ctx(r.Context()).Error()
	}
	event.Err(err).
		Int("status", resp.Status).
		Str("code", resp.Code).
		Str("path", logging.SanitizeLogValue(r.URL.Path)).
		Msg("API Error")

	writeJSON(w, resp.Status, ErrorBody{
		Code:      resp.Code,
		Message:   resp.Message,
		Details:   resp.Details,
		RequestID: requestID,
	})
}

// writeErrorStatus writes a plain error for the given status, used by the
// router's fallback handlers.
func writeErrorStatus(w http.ResponseWriter, r *http.Request, status int) {
	writeJSON(w, status, ErrorBody{
		Code:      codeForStatus(status),
		Message:   http.StatusText(status),
		RequestID: logging.RequestIDFromContext(r.Context()),
	})
}
