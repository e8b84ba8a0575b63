// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

func TestGenerateRequestID(t *testing.T) {
	id := GenerateRequestID()
	if _, err := uuid.Parse(id); err != nil {
		t.Errorf("GenerateRequestID() = %q is not a UUID: %v", id, err)
	}
	if GenerateRequestID() == id {
		t.Error("GenerateRequestID() returned the same ID twice")
	}
}

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := context.Background()
	if got := RequestIDFromContext(ctx); got != "" {
		t.Errorf("RequestIDFromContext(empty) = %q", got)
	}
	ctx = ContextWithRequestID(ctx, "req-1")
	if got := RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("RequestIDFromContext() = %q, want req-1", got)
	}
}

func TestCtx_AddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	ctx := ContextWithLogger(context.Background(), NewTestLogger(&buf).Level(zerolog.InfoLevel))
	ctx = ContextWithRequestID(ctx, "req-42")

	prevLevel := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(prevLevel) })

	Ctx(ctx).Info().Msg("handled")

	out := buf.String()
	if !strings.Contains(out, `"request_id":"req-42"`) || !strings.Contains(out, "handled") {
		t.Errorf("Ctx() output = %s", out)
	}
}

func TestLoggerFromContext_FallsBackToGlobal(t *testing.T) {
	var buf bytes.Buffer
	prev := Logger()
	SetLogger(NewTestLogger(&buf))
	t.Cleanup(func() { SetLogger(prev) })

	logger := LoggerFromContext(context.Background())
	logger.Error().Msg("from global")
	if !strings.Contains(buf.String(), "from global") {
		t.Errorf("LoggerFromContext did not return the global logger: %s", buf.String())
	}
}
