// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package upstream

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/tomtom215/bundlerelay/internal/config"
)

func testBreakerConfig() config.CircuitBreakerConfig {
	return config.CircuitBreakerConfig{
		Enabled:      true,
		MaxRequests:  1,
		Interval:     0, // never reset counts while closed
		Timeout:      time.Minute,
		MinRequests:  3,
		FailureRatio: 0.5,
	}
}

func newTestBreaker(t *testing.T, client Client) *CircuitBreakerClient {
	t.Helper()
	return newCircuitBreakerClient(client, testBreakerConfig(), "test-"+t.Name())
}

func TestCircuitBreaker_PassesResults(t *testing.T) {
	mock := NewMockClient()
	mock.SetResponse(OpOrganization, `{"id":"org"}`)
	mock.SetTeam(&Team{ID: "T1", SocialAccounts: []SocialAccount{{ID: "S1", Type: "TIKTOK"}}})
	cb := newTestBreaker(t, mock)

	raw, err := cb.Organization(context.Background())
	if err != nil || string(raw) != `{"id":"org"}` {
		t.Fatalf("Organization() = %s, %v", raw, err)
	}

	team, err := cb.GetTeam(context.Background(), "T1")
	if err != nil {
		t.Fatalf("GetTeam() error = %v", err)
	}
	if len(team.SocialAccounts) != 1 || team.SocialAccounts[0].Type != "TIKTOK" {
		t.Errorf("team = %+v", team)
	}
}

func TestCircuitBreaker_EmptyBodyPassesThrough(t *testing.T) {
	mock := NewMockClient()
	mock.SetResponse(OpDeletePost, "")
	cb := newTestBreaker(t, mock)

	raw, err := cb.DeletePost(context.Background(), "P1")
	if err != nil {
		t.Fatalf("DeletePost() error = %v", err)
	}
	if raw != nil {
		t.Errorf("raw = %s, want nil", raw)
	}
}

func TestCircuitBreaker_ClientErrorsDoNotTrip(t *testing.T) {
	mock := NewMockClient()
	mock.SetError(OpGetUpload, &APIError{Operation: OpGetUpload, Status: http.StatusNotFound, Message: "Not Found"})
	cb := newTestBreaker(t, mock)

	for i := 0; i < 10; i++ {
		_, err := cb.GetUpload(context.Background(), "missing")
		var apiErr *APIError
		if !errors.As(err, &apiErr) || apiErr.Status != http.StatusNotFound {
			t.Fatalf("call %d: error = %v, want upstream 404", i, err)
		}
	}

	if cb.State() != "closed" {
		t.Errorf("State() = %s, want closed", cb.State())
	}
	if got := len(mock.CallsTo(OpGetUpload)); got != 10 {
		t.Errorf("upstream calls = %d, want 10", got)
	}
}

func TestCircuitBreaker_CanceledRequestsDoNotTrip(t *testing.T) {
	mock := NewMockClient()
	mock.SetError(OpHealth, fmt.Errorf("Health: %w", context.Canceled))
	cb := newTestBreaker(t, mock)

	for i := 0; i < 5; i++ {
		_, _ = cb.Health(context.Background())
	}
	if cb.State() != "closed" {
		t.Errorf("State() = %s, want closed", cb.State())
	}
}

func TestCircuitBreaker_ServerErrorsTrip(t *testing.T) {
	mock := NewMockClient()
	mock.SetError(OpHealth, &APIError{Operation: OpHealth, Status: http.StatusServiceUnavailable})
	cb := newTestBreaker(t, mock)

	for i := 0; i < 3; i++ {
		if _, err := cb.Health(context.Background()); errors.Is(err, ErrCircuitOpen) {
			t.Fatalf("call %d rejected before threshold", i)
		}
	}

	if cb.State() != "open" {
		t.Fatalf("State() = %s, want open", cb.State())
	}

	_, err := cb.Health(context.Background())
	if !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("error = %v, want ErrCircuitOpen", err)
	}
	if got := len(mock.CallsTo(OpHealth)); got != 3 {
		t.Errorf("upstream calls = %d, want 3 (open breaker must not call through)", got)
	}
}

func TestCircuitBreaker_TransportErrorsTrip(t *testing.T) {
	mock := NewMockClient()
	mock.SetError(OpListPosts, errors.New("dial tcp: connection refused"))
	cb := newTestBreaker(t, mock)

	for i := 0; i < 3; i++ {
		_, _ = cb.ListPosts(context.Background(), ListPostsParams{TeamID: "T1"})
	}
	if cb.State() != "open" {
		t.Errorf("State() = %s, want open", cb.State())
	}
}

func TestCountsAsSuccess(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, true},
		{"400", &APIError{Status: 400}, true},
		{"429", &APIError{Status: 429}, true},
		{"500", &APIError{Status: 500}, false},
		{"wrapped 502", fmt.Errorf("x: %w", &APIError{Status: 502}), false},
		{"canceled", context.Canceled, true},
		{"deadline", context.DeadlineExceeded, false},
		{"not configured", ErrNotConfigured, true},
		{"transport", errors.New("EOF"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := countsAsSuccess(tt.err); got != tt.want {
				t.Errorf("countsAsSuccess(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
