// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package api

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/bundlerelay/internal/params"
	"github.com/tomtom215/bundlerelay/internal/validation"
)

const defaultMaxJSONBytes = 2 << 20

// readObject reads the request body and checks that it is a JSON object.
// A missing body reads as {}.
func (h *Handler) readObject(w http.ResponseWriter, r *http.Request) (json.RawMessage, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return json.RawMessage("{}"), nil
	}

	limit := int64(defaultMaxJSONBytes)
	if h.config != nil && h.config.Uploads.MaxJSONBytes > 0 {
		limit = h.config.Uploads.MaxJSONBytes
	}

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return nil, newHTTPError(http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request body exceeds %d bytes", maxErr.Limit))
		}
		return nil, fmt.Errorf("read request body: %w", err)
	}

	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return json.RawMessage("{}"), nil
	}
	if data[0] != '{' || !json.Valid(data) {
		return nil, errBodyNotObject
	}
	return data, nil
}

// decodeBody reads a JSON object body into dst. Fields dst does not declare
// are dropped.
func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	raw, err := h.readObject(w, r)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return errBodyNotObject
	}
	return nil
}

// validatePayload runs the struct validator on an assembled upstream payload.
func validatePayload(v any) error {
	if verr := validation.ValidateStruct(v); verr != nil {
		return verr
	}
	return nil
}

// pathParam returns a required, trimmed path parameter.
func pathParam(r *http.Request, key string) (string, error) {
	return params.RequireString(key, params.Path(r, key))
}

// jsonString returns v when it is a JSON string, without trimming.
func jsonString(v any) *string {
	if s, ok := v.(string); ok {
		return &s
	}
	return nil
}

// jsonBool returns v when it is a JSON boolean.
func jsonBool(v any) *bool {
	if b, ok := params.OptionalBool(v); ok {
		return &b
	}
	return nil
}

// jsonNumber returns v when it is a JSON number.
func jsonNumber(v any) *float64 {
	switch n := v.(type) {
	case float64:
		return &n
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return &f
		}
	}
	return nil
}

// optionalNumber wraps params.OptionalNumber for pointer-typed payload fields.
func optionalNumber(v any) *float64 {
	if f, ok := params.OptionalNumber(v); ok {
		return &f
	}
	return nil
}

// stringOr returns the trimmed string in v, or fallback when v is absent.
func stringOr(v any, fallback string) string {
	if s, ok := params.OptionalString(v); ok {
		return s
	}
	return fallback
}
