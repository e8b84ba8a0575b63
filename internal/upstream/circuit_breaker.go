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

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/bundlerelay/internal/config"
	"github.com/tomtom215/bundlerelay/internal/logging"
	"github.com/tomtom215/bundlerelay/internal/metrics"
)

// BreakerName labels the bundle.social breaker in metrics and logs.
const BreakerName = "bundlesocial-api"

// Ensure CircuitBreakerClient implements Client
var _ Client = (*CircuitBreakerClient)(nil)

// CircuitBreakerClient wraps a Client with the circuit breaker pattern so a
// failing bundle.social API is not hammered by every inbound request.
//
// Only transport errors and 5xx answers count as failures. A 4xx answer is
// returned to the caller unchanged and counts as a success, as does a
// request canceled by its client.
//
// The breaker uses real time (via sony/gobreaker) for its interval and
// timeout; tests drive it with MinRequests-sized bursts instead of waiting.
type CircuitBreakerClient struct {
	client Client
	cb     *gobreaker.CircuitBreaker[interface{}]
	name   string
}

// NewCircuitBreakerClient wraps client with a breaker configured from cfg.
// The breaker opens when at least MinRequests calls were made in the
// current interval and the failure ratio reaches FailureRatio.
func NewCircuitBreakerClient(client Client, cfg config.CircuitBreakerConfig) *CircuitBreakerClient {
	return newCircuitBreakerClient(client, cfg, BreakerName)
}

func newCircuitBreakerClient(client Client, cfg config.CircuitBreakerConfig, name string) *CircuitBreakerClient {
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0) // 0 = closed
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[interface{}](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}

			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= cfg.FailureRatio

			if shouldTrip {
				logging.Warn().
					Str("breaker", name).
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("[CIRCUIT BREAKER] Opening circuit")
			}

			return shouldTrip
		},

		IsSuccessful: countsAsSuccess,

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)

			logging.Info().Str("breaker", name).Str("from", fromStr).Str("to", toStr).
				Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()

			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &CircuitBreakerClient{
		client: client,
		cb:     cb,
		name:   name,
	}
}

// countsAsSuccess decides whether err should count against the breaker.
func countsAsSuccess(err error) bool {
	if err == nil {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status < http.StatusInternalServerError
	}
	return errors.Is(err, context.Canceled) || errors.Is(err, ErrNotConfigured)
}

// State returns the breaker state: closed, half-open or open.
func (cbc *CircuitBreakerClient) State() string {
	return stateToString(cbc.cb.State())
}

// execute wraps an upstream call with circuit breaker protection.
func (cbc *CircuitBreakerClient) execute(fn func() (interface{}, error)) (interface{}, error) {
	result, err := cbc.cb.Execute(fn)

	switch {
	case err == nil:
		metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "success").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(0)
		return result, nil

	case errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "rejected").Inc()
		logging.Warn().Err(err).Str("breaker", cbc.name).Msg("[CIRCUIT BREAKER] Request rejected")
		return nil, fmt.Errorf("%w: %w", ErrCircuitOpen, err)

	case countsAsSuccess(err):
		metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "success").Inc()
		return nil, err

	default:
		metrics.CircuitBreakerRequests.WithLabelValues(cbc.name, "failure").Inc()
		counts := cbc.cb.Counts()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(cbc.name).Set(float64(counts.ConsecutiveFailures))
		return nil, err
	}
}

// run executes fn through the breaker and restores its static result type.
func run[T any](cbc *CircuitBreakerClient, fn func() (T, error)) (T, error) {
	var zero T
	result, err := cbc.execute(func() (interface{}, error) {
		return fn()
	})
	if err != nil {
		return zero, err
	}
	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

// stateToFloat converts circuit breaker state to float for Prometheus gauge
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}

// The Client methods below forward to the wrapped client through the breaker.

func (cbc *CircuitBreakerClient) Health(ctx context.Context) (json.RawMessage, error) {
	return run(cbc, func() (json.RawMessage, error) { return cbc.client.Health(ctx) })
}

func (cbc *CircuitBreakerClient) Organization(ctx context.Context) (json.RawMessage, error) {
	return run(cbc, func() (json.RawMessage, error) { return cbc.client.Organization(ctx) })
}

func (cbc *CircuitBreakerClient) ListTeams(ctx context.Context, params ListTeamsParams) (json.RawMessage, error) {
	return run(cbc, func() (json.RawMessage, error) { return cbc.client.ListTeams(ctx, params) })
}

func (cbc *CircuitBreakerClient) CreateTeam(ctx context.Context, req *CreateTeamRequest) (json.RawMessage, error) {
	return run(cbc, func() (json.RawMessage, error) { return cbc.client.CreateTeam(ctx, req) })
}

func (cbc *CircuitBreakerClient) GetTeam(ctx context.Context, id string) (*Team, error) {
	return run(cbc, func() (*Team, error) { return cbc.client.GetTeam(ctx, id) })
}

func (cbc *CircuitBreakerClient) UpdateTeam(ctx context.Context, id string, req *UpdateTeamRequest) (json.RawMessage, error) {
	return run(cbc, func() (json.RawMessage, error) { return cbc.client.UpdateTeam(ctx, id, req) })
}

func (cbc *CircuitBreakerClient) DeleteTeam(ctx context.Context, id string) (json.RawMessage, error) {
	return run(cbc, func() (json.RawMessage, error) { return cbc.client.DeleteTeam(ctx, id) })
}

func (cbc *CircuitBreakerClient) CreatePortalLink(ctx context.Context, req *PortalLinkRequest) (json.RawMessage, error) {
	return run(cbc, func() (json.RawMessage, error) { return cbc.client.CreatePortalLink(ctx, req) })
}

func (cbc *CircuitBreakerClient) ConnectSocialAccount(ctx context.Context, req *ConnectRequest) (json.RawMessage, error) {
	return run(cbc, func() (json.RawMessage, error) { return cbc.client.ConnectSocialAccount(ctx, req) })
}

func (cbc *CircuitBreakerClient) SetChannel(ctx context.Context, req *SetChannelRequest) (json.RawMessage, error) {
	return run(cbc, func() (json.RawMessage, error) { return cbc.client.SetChannel(ctx, req) })
}

func (cbc *CircuitBreakerClient) RefreshChannels(ctx context.Context, req *RefreshChannelsRequest) (json.RawMessage, error) {
	return run(cbc, func() (json.RawMessage, error) { return cbc.client.RefreshChannels(ctx, req) })
}

func (cbc *CircuitBreakerClient) DisconnectSocialAccount(ctx context.Context, req *DisconnectRequest) (json.RawMessage, error) {
	return run(cbc, func() (json.RawMessage, error) { return cbc.client.DisconnectSocialAccount(ctx, req) })
}

func (cbc *CircuitBreakerClient) ListUploads(ctx context.Context, params ListUploadsParams) (json.RawMessage, error) {
	return run(cbc, func() (json.RawMessage, error) { return cbc.client.ListUploads(ctx, params) })
}

func (cbc *CircuitBreakerClient) GetUpload(ctx context.Context, id string) (json.RawMessage, error) {
	return run(cbc, func() (json.RawMessage, error) { return cbc.client.GetUpload(ctx, id) })
}

func (cbc *CircuitBreakerClient) CreateUpload(ctx context.Context, file *UploadFile) (json.RawMessage, error) {
	return run(cbc, func() (json.RawMessage, error) { return cbc.client.CreateUpload(ctx, file) })
}

func (cbc *CircuitBreakerClient) InitLargeUpload(ctx context.Context, req *InitUploadRequest) (json.RawMessage, error) {
	return run(cbc, func() (json.RawMessage, error) { return cbc.client.InitLargeUpload(ctx, req) })
}

func (cbc *CircuitBreakerClient) FinalizeLargeUpload(ctx context.Context, req *FinalizeUploadRequest) (json.RawMessage, error) {
	return run(cbc, func() (json.RawMessage, error) { return cbc.client.FinalizeLargeUpload(ctx, req) })
}

func (cbc *CircuitBreakerClient) ListPosts(ctx context.Context, params ListPostsParams) (json.RawMessage, error) {
	return run(cbc, func() (json.RawMessage, error) { return cbc.client.ListPosts(ctx, params) })
}

func (cbc *CircuitBreakerClient) CreatePost(ctx context.Context, body json.RawMessage) (json.RawMessage, error) {
	return run(cbc, func() (json.RawMessage, error) { return cbc.client.CreatePost(ctx, body) })
}

func (cbc *CircuitBreakerClient) GetPost(ctx context.Context, id string) (*Post, error) {
	return run(cbc, func() (*Post, error) { return cbc.client.GetPost(ctx, id) })
}

func (cbc *CircuitBreakerClient) UpdatePost(ctx context.Context, id string, body json.RawMessage) (json.RawMessage, error) {
	return run(cbc, func() (json.RawMessage, error) { return cbc.client.UpdatePost(ctx, id, body) })
}

func (cbc *CircuitBreakerClient) DeletePost(ctx context.Context, id string) (json.RawMessage, error) {
	return run(cbc, func() (json.RawMessage, error) { return cbc.client.DeletePost(ctx, id) })
}

func (cbc *CircuitBreakerClient) RetryPost(ctx context.Context, id string) (json.RawMessage, error) {
	return run(cbc, func() (json.RawMessage, error) { return cbc.client.RetryPost(ctx, id) })
}

func (cbc *CircuitBreakerClient) SocialAccountAnalytics(ctx context.Context, params SocialAccountAnalyticsParams) (*SocialAccountAnalytics, error) {
	return run(cbc, func() (*SocialAccountAnalytics, error) { return cbc.client.SocialAccountAnalytics(ctx, params) })
}

func (cbc *CircuitBreakerClient) PostAnalytics(ctx context.Context, params PostAnalyticsParams) (json.RawMessage, error) {
	return run(cbc, func() (json.RawMessage, error) { return cbc.client.PostAnalytics(ctx, params) })
}

func (cbc *CircuitBreakerClient) ForceSocialAccountAnalytics(ctx context.Context, req *ForceSocialAccountAnalyticsRequest) (json.RawMessage, error) {
	return run(cbc, func() (json.RawMessage, error) { return cbc.client.ForceSocialAccountAnalytics(ctx, req) })
}

func (cbc *CircuitBreakerClient) ForcePostAnalytics(ctx context.Context, req *ForcePostAnalyticsRequest) (json.RawMessage, error) {
	return run(cbc, func() (json.RawMessage, error) { return cbc.client.ForcePostAnalytics(ctx, req) })
}

func (cbc *CircuitBreakerClient) ListComments(ctx context.Context, params ListCommentsParams) (json.RawMessage, error) {
	return run(cbc, func() (json.RawMessage, error) { return cbc.client.ListComments(ctx, params) })
}

func (cbc *CircuitBreakerClient) CreateComment(ctx context.Context, body json.RawMessage) (json.RawMessage, error) {
	return run(cbc, func() (json.RawMessage, error) { return cbc.client.CreateComment(ctx, body) })
}

func (cbc *CircuitBreakerClient) GetComment(ctx context.Context, id string) (json.RawMessage, error) {
	return run(cbc, func() (json.RawMessage, error) { return cbc.client.GetComment(ctx, id) })
}

func (cbc *CircuitBreakerClient) UpdateComment(ctx context.Context, id string, body json.RawMessage) (json.RawMessage, error) {
	return run(cbc, func() (json.RawMessage, error) { return cbc.client.UpdateComment(ctx, id, body) })
}

func (cbc *CircuitBreakerClient) DeleteComment(ctx context.Context, id string) (json.RawMessage, error) {
	return run(cbc, func() (json.RawMessage, error) { return cbc.client.DeleteComment(ctx, id) })
}
