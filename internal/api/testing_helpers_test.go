// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/bundlerelay/internal/config"
	"github.com/tomtom215/bundlerelay/internal/upstream"
)

// testConfig returns a valid configuration with rate limiting disabled.
func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:            3000,
			Host:            "127.0.0.1",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 5 * time.Second,
			Environment:     "development",
		},
		Upstream: config.UpstreamConfig{
			BaseURL: "https://api.bundle.social/api/v1",
			APIKey:  "test-key",
			Timeout: 5 * time.Second,
		},
		Webhook: config.WebhookConfig{
			Secret:       "test-secret",
			MaxBodyBytes: 2 << 20,
		},
		Defaults: config.DefaultsConfig{
			RedirectURL: "http://localhost:3000/instagram/callback",
			TeamName:    "Instagram Demo Team",
			TeamTier:    "FREE",
			Post: config.PostDefaults{
				Type:   "POST",
				Status: "SCHEDULED",
			},
		},
		Uploads: config.UploadsConfig{
			MaxFileSize:  1 << 20,
			MaxJSONBytes: 2 << 20,
		},
		Security: config.SecurityConfig{
			RateLimitDisabled: true,
		},
	}
}

// testServer bundles the routed handler with its upstream double.
type testServer struct {
	mock    *upstream.MockClient
	cfg     *config.Config
	handler http.Handler
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWithConfig(t, testConfig())
}

func newTestServerWithConfig(t *testing.T, cfg *config.Config) *testServer {
	t.Helper()
	mock := upstream.NewMockClient()
	h := NewHandler(mock, cfg, nil)
	return &testServer{
		mock:    mock,
		cfg:     cfg,
		handler: NewRouter(h, nil, cfg).SetupChi(),
	}
}

// do sends a request through the router. A non-empty body is sent as JSON.
func (s *testServer) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

// onlyCall returns the single recorded call to operation.
func (s *testServer) onlyCall(t *testing.T, operation string) upstream.Call {
	t.Helper()
	calls := s.mock.CallsTo(operation)
	if len(calls) != 1 {
		t.Fatalf("%s called %d times, want 1 (all calls: %v)", operation, len(calls), s.mock.Calls())
	}
	return calls[0]
}

func (s *testServer) assertNoUpstreamCalls(t *testing.T) {
	t.Helper()
	if calls := s.mock.Calls(); len(calls) != 0 {
		t.Fatalf("expected no upstream calls, got %v", calls)
	}
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return v
}

// assertError checks status, code and message of an error response.
func assertError(t *testing.T, rec *httptest.ResponseRecorder, status int, code, message string) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, status, rec.Body.String())
	}
	body := decodeBody[ErrorBody](t, rec)
	if body.Code != code {
		t.Errorf("code = %q, want %q", body.Code, code)
	}
	if message != "" && body.Message != message {
		t.Errorf("message = %q, want %q", body.Message, message)
	}
}

func ptr[T any](v T) *T { return &v }
