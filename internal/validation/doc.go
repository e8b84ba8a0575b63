// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

// Package validation provides struct validation using go-playground/validator v10.
//
// Handlers assemble an outbound payload from normalized parameters and run it
// through ValidateStruct before calling the upstream API. Field names in
// messages are taken from json tags, and nested failures are reported by
// their dotted path:
//
//	type connectRequest struct {
//	    TeamID      string `json:"teamId" validate:"notblank"`
//	    Type        string `json:"type" validate:"required"`
//	    RedirectURL string `json:"redirectUrl" validate:"required,http_url"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    // respond 400 with apiErr.Code, apiErr.Message, apiErr.Details
//	}
//
// The validator is a process-wide singleton; it caches struct metadata and is
// safe for concurrent use. Besides the built-in tags it registers notblank,
// which rejects whitespace-only strings.
package validation
