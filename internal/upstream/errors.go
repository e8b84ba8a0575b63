// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package upstream

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
)

var (
	// ErrCircuitOpen is returned when the circuit breaker rejects a call.
	ErrCircuitOpen = errors.New("bundle.social API circuit breaker is open")

	// ErrNotConfigured is returned when no API key is configured.
	ErrNotConfigured = errors.New("bundle.social API key is not configured")

	// ErrResponseTooLarge is returned when a response exceeds the size limit.
	ErrResponseTooLarge = errors.New("bundle.social response exceeds size limit")
)

// APIError is a non-2xx answer from bundle.social.
type APIError struct {
	Operation string
	Status    int
	Message   string

	// Body is the upstream response body. It is always valid JSON when set:
	// non-JSON bodies are stored as a JSON string.
	Body json.RawMessage
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: bundle.social returned %d: %s", e.Operation, e.Status, e.Message)
}

// newAPIError builds an APIError from a raw upstream response.
func newAPIError(operation string, status int, body []byte) *APIError {
	apiErr := &APIError{
		Operation: operation,
		Status:    status,
		Message:   errorMessage(status, body),
	}

	trimmed := strings.TrimSpace(string(body))
	switch {
	case trimmed == "":
	case json.Valid([]byte(trimmed)):
		apiErr.Body = json.RawMessage(trimmed)
	default:
		if encoded, err := json.Marshal(trimmed); err == nil {
			apiErr.Body = encoded
		}
	}

	return apiErr
}

// errorMessage extracts a human-readable message from an error body. NestJS
// style bodies carry "message" as a string or a list of strings.
func errorMessage(status int, body []byte) string {
	var parsed struct {
		Message json.RawMessage `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		if msg := messageText(parsed.Message); msg != "" {
			return msg
		}
		if msg := messageText(parsed.Error); msg != "" {
			return msg
		}
	}

	if text := http.StatusText(status); text != "" {
		return text
	}
	return "bundle.social request failed"
}

func messageText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		parts := list[:0]
		for _, item := range list {
			if item = strings.TrimSpace(item); item != "" {
				parts = append(parts, item)
			}
		}
		return strings.Join(parts, "; ")
	}

	return ""
}

// IsNotFound reports whether err is an upstream 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

var errEmptyBody = errors.New("empty response body")

// DecodeError means bundle.social answered 2xx with a body the relay could
// not read.
type DecodeError struct {
	Operation string
	Err       error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: failed to decode bundle.social response: %v", e.Operation, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
