// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package upstream

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/bundlerelay/internal/config"
	"github.com/tomtom215/bundlerelay/internal/logging"
	"github.com/tomtom215/bundlerelay/internal/metrics"
)

// maxResponseBytes bounds how much of an upstream response is buffered.
const maxResponseBytes = 32 << 20 // 32MB

const userAgent = "bundlerelay/1.0"

// Ensure HTTPClient implements Client
var _ Client = (*HTTPClient)(nil)

// HTTPClient calls the bundle.social REST API over HTTP.
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter // nil when outbound limiting is disabled
}

// NewHTTPClient creates a client from the upstream configuration.
func NewHTTPClient(cfg *config.UpstreamConfig) *HTTPClient {
	c := &HTTPClient{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
	if cfg.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)
	}
	return c
}

// request describes one outbound call.
type request struct {
	method      string
	path        string
	query       url.Values
	body        io.Reader
	contentType string
}

// do executes a request and returns the trimmed response body. Non-2xx
// answers become *APIError; an empty 2xx body returns (nil, nil).
func (c *HTTPClient) do(ctx context.Context, operation string, r request) (json.RawMessage, error) {
	if c.apiKey == "" {
		closeBody(r.body)
		return nil, fmt.Errorf("%s: %w", operation, ErrNotConfigured)
	}

	if err := c.wait(ctx); err != nil {
		closeBody(r.body)
		return nil, fmt.Errorf("%s: rate limiter: %w", operation, err)
	}

	reqURL := c.baseURL + r.path
	if len(r.query) > 0 {
		reqURL += "?" + r.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, r.method, reqURL, r.body)
	if err != nil {
		closeBody(r.body)
		return nil, fmt.Errorf("%s: create request: %w", operation, err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordUpstreamCall(operation, 0, time.Since(start))
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	duration := time.Since(start)
	metrics.RecordUpstreamCall(operation, resp.StatusCode, duration)

	logging.Ctx(ctx).Debug().
		Str("operation", operation).
		Str("method", r.method).
		Str("path", r.path).
		Int("status", resp.StatusCode).
		Dur("duration", duration).
		Msg("bundle.social call")

	if err != nil {
		return nil, fmt.Errorf("%s: read response: %w", operation, err)
	}
	if len(body) > maxResponseBytes {
		return nil, fmt.Errorf("%s: %w", operation, ErrResponseTooLarge)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(operation, resp.StatusCode, body)
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if !json.Valid(trimmed) {
		return nil, &DecodeError{Operation: operation, Err: errors.New("response is not valid JSON")}
	}
	return json.RawMessage(trimmed), nil
}

func (c *HTTPClient) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	start := time.Now()
	err := c.limiter.Wait(ctx)
	metrics.UpstreamRateLimitWait.Observe(time.Since(start).Seconds())
	return err
}

func (c *HTTPClient) get(ctx context.Context, operation, path string, query url.Values) (json.RawMessage, error) {
	return c.do(ctx, operation, request{method: http.MethodGet, path: path, query: query})
}

// send marshals payload as the JSON request body.
func (c *HTTPClient) send(ctx context.Context, operation, method, path string, payload any) (json.RawMessage, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%s: encode request: %w", operation, err)
	}
	return c.sendRaw(ctx, operation, method, path, encoded)
}

func (c *HTTPClient) sendRaw(ctx context.Context, operation, method, path string, body json.RawMessage) (json.RawMessage, error) {
	r := request{method: method, path: path}
	if len(body) > 0 {
		r.body = bytes.NewReader(body)
		r.contentType = "application/json"
	}
	return c.do(ctx, operation, r)
}

func closeBody(body io.Reader) {
	if rc, ok := body.(io.Closer); ok {
		_ = rc.Close()
	}
}

func resourcePath(collection, id string, suffix ...string) string {
	path := collection + url.PathEscape(id)
	for _, s := range suffix {
		path += "/" + s
	}
	return path
}

// Health retrieves the bundle.social API health document.
func (c *HTTPClient) Health(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, OpHealth, "/", nil)
}

// Organization retrieves the organization owning the API key.
func (c *HTTPClient) Organization(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, OpOrganization, "/organization/", nil)
}

// ListTeams lists teams with optional pagination.
func (c *HTTPClient) ListTeams(ctx context.Context, params ListTeamsParams) (json.RawMessage, error) {
	q := newQuery()
	q.number("limit", params.Limit)
	q.number("offset", params.Offset)
	return c.get(ctx, OpListTeams, "/team/", q.values())
}

// CreateTeam creates a team.
func (c *HTTPClient) CreateTeam(ctx context.Context, req *CreateTeamRequest) (json.RawMessage, error) {
	return c.send(ctx, OpCreateTeam, http.MethodPost, "/team/", req)
}

// GetTeam retrieves a team together with its connected social accounts.
func (c *HTTPClient) GetTeam(ctx context.Context, id string) (*Team, error) {
	raw, err := c.get(ctx, OpGetTeam, resourcePath("/team/", id), nil)
	if err != nil {
		return nil, err
	}
	var team Team
	if err := decodeInto(OpGetTeam, raw, &team); err != nil {
		return nil, err
	}
	return &team, nil
}

// UpdateTeam renames a team or changes its avatar.
func (c *HTTPClient) UpdateTeam(ctx context.Context, id string, req *UpdateTeamRequest) (json.RawMessage, error) {
	return c.send(ctx, OpUpdateTeam, http.MethodPatch, resourcePath("/team/", id), req)
}

// DeleteTeam deletes a team.
func (c *HTTPClient) DeleteTeam(ctx context.Context, id string) (json.RawMessage, error) {
	return c.do(ctx, OpDeleteTeam, request{method: http.MethodDelete, path: resourcePath("/team/", id)})
}

// CreatePortalLink creates a hosted account-connection portal link.
func (c *HTTPClient) CreatePortalLink(ctx context.Context, req *PortalLinkRequest) (json.RawMessage, error) {
	return c.send(ctx, OpCreatePortalLink, http.MethodPost, "/social-account/create-portal-link", req)
}

// ConnectSocialAccount starts an OAuth connection for one platform.
func (c *HTTPClient) ConnectSocialAccount(ctx context.Context, req *ConnectRequest) (json.RawMessage, error) {
	return c.send(ctx, OpConnectSocialAccount, http.MethodPost, "/social-account/connect", req)
}

// SetChannel selects the page or channel a social account posts to.
func (c *HTTPClient) SetChannel(ctx context.Context, req *SetChannelRequest) (json.RawMessage, error) {
	return c.send(ctx, OpSetChannel, http.MethodPost, "/social-account/set-channel", req)
}

// RefreshChannels refreshes the channel list of a social account.
func (c *HTTPClient) RefreshChannels(ctx context.Context, req *RefreshChannelsRequest) (json.RawMessage, error) {
	return c.send(ctx, OpRefreshChannels, http.MethodPost, "/social-account/refresh-channels", req)
}

// DisconnectSocialAccount disconnects a team's account of the given type.
func (c *HTTPClient) DisconnectSocialAccount(ctx context.Context, req *DisconnectRequest) (json.RawMessage, error) {
	return c.send(ctx, OpDisconnectSocialAccount, http.MethodDelete, "/social-account/disconnect", req)
}

// ListUploads lists uploads with optional filters.
func (c *HTTPClient) ListUploads(ctx context.Context, params ListUploadsParams) (json.RawMessage, error) {
	q := newQuery()
	q.str("teamId", params.TeamID)
	q.str("status", params.Status)
	q.str("type", params.Type)
	return c.get(ctx, OpListUploads, "/upload/", q.values())
}

// GetUpload retrieves one upload.
func (c *HTTPClient) GetUpload(ctx context.Context, id string) (json.RawMessage, error) {
	return c.get(ctx, OpGetUpload, resourcePath("/upload/", id), nil)
}

// CreateUpload streams a file to bundle.social as multipart form data.
func (c *HTTPClient) CreateUpload(ctx context.Context, file *UploadFile) (json.RawMessage, error) {
	body, contentType := streamUploadForm(file)
	return c.do(ctx, OpCreateUpload, request{
		method:      http.MethodPost,
		path:        "/upload/",
		body:        body,
		contentType: contentType,
	})
}

// InitLargeUpload starts a chunked upload and returns its upload URL.
func (c *HTTPClient) InitLargeUpload(ctx context.Context, req *InitUploadRequest) (json.RawMessage, error) {
	return c.send(ctx, OpInitLargeUpload, http.MethodPost, "/upload/init", req)
}

// FinalizeLargeUpload completes a chunked upload.
func (c *HTTPClient) FinalizeLargeUpload(ctx context.Context, req *FinalizeUploadRequest) (json.RawMessage, error) {
	return c.send(ctx, OpFinalizeLargeUpload, http.MethodPost, "/upload/finalize", req)
}

// ListPosts lists a team's posts. Platforms are sent as repeated keys.
func (c *HTTPClient) ListPosts(ctx context.Context, params ListPostsParams) (json.RawMessage, error) {
	q := newQuery()
	q.str("teamId", params.TeamID)
	q.number("limit", params.Limit)
	q.number("offset", params.Offset)
	q.str("q", params.Q)
	q.str("order", params.Order)
	q.str("orderBy", params.OrderBy)
	q.str("status", params.Status)
	q.list("platforms", params.Platforms)
	return c.get(ctx, OpListPosts, "/post/", q.values())
}

// CreatePost creates a post from a JSON object body.
func (c *HTTPClient) CreatePost(ctx context.Context, body json.RawMessage) (json.RawMessage, error) {
	return c.sendRaw(ctx, OpCreatePost, http.MethodPost, "/post/", body)
}

// GetPost retrieves a post including its per-platform data.
func (c *HTTPClient) GetPost(ctx context.Context, id string) (*Post, error) {
	raw, err := c.get(ctx, OpGetPost, resourcePath("/post/", id), nil)
	if err != nil {
		return nil, err
	}
	var post Post
	if err := decodeInto(OpGetPost, raw, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdatePost updates a post from a JSON object body.
func (c *HTTPClient) UpdatePost(ctx context.Context, id string, body json.RawMessage) (json.RawMessage, error) {
	return c.sendRaw(ctx, OpUpdatePost, http.MethodPatch, resourcePath("/post/", id), body)
}

// DeletePost deletes a post.
func (c *HTTPClient) DeletePost(ctx context.Context, id string) (json.RawMessage, error) {
	return c.do(ctx, OpDeletePost, request{method: http.MethodDelete, path: resourcePath("/post/", id)})
}

// RetryPost retries a failed post.
func (c *HTTPClient) RetryPost(ctx context.Context, id string) (json.RawMessage, error) {
	return c.do(ctx, OpRetryPost, request{method: http.MethodPost, path: resourcePath("/post/", id, "retry")})
}

// SocialAccountAnalytics retrieves the analytics series of a team's account
// on one platform.
func (c *HTTPClient) SocialAccountAnalytics(ctx context.Context, params SocialAccountAnalyticsParams) (*SocialAccountAnalytics, error) {
	q := newQuery()
	q.str("teamId", params.TeamID)
	q.str("platformType", params.PlatformType)
	raw, err := c.get(ctx, OpSocialAccountAnalytics, "/analytics/social-account", q.values())
	if err != nil {
		return nil, err
	}
	var analytics SocialAccountAnalytics
	if err := decodeInto(OpSocialAccountAnalytics, raw, &analytics); err != nil {
		return nil, err
	}
	return &analytics, nil
}

// PostAnalytics retrieves a post's analytics on one platform.
func (c *HTTPClient) PostAnalytics(ctx context.Context, params PostAnalyticsParams) (json.RawMessage, error) {
	q := newQuery()
	q.str("postId", params.PostID)
	q.str("platformType", params.PlatformType)
	return c.get(ctx, OpPostAnalytics, "/analytics/post", q.values())
}

// ForceSocialAccountAnalytics asks bundle.social to refresh account analytics now.
func (c *HTTPClient) ForceSocialAccountAnalytics(ctx context.Context, req *ForceSocialAccountAnalyticsRequest) (json.RawMessage, error) {
	return c.send(ctx, OpForceSocialAccountAnalytics, http.MethodPost, "/analytics/social-account/force", req)
}

// ForcePostAnalytics asks bundle.social to refresh post analytics now.
func (c *HTTPClient) ForcePostAnalytics(ctx context.Context, req *ForcePostAnalyticsRequest) (json.RawMessage, error) {
	return c.send(ctx, OpForcePostAnalytics, http.MethodPost, "/analytics/post/force", req)
}

// ListComments lists a team's comments. Platforms are sent as repeated keys.
func (c *HTTPClient) ListComments(ctx context.Context, params ListCommentsParams) (json.RawMessage, error) {
	q := newQuery()
	q.str("teamId", params.TeamID)
	q.str("postId", params.PostID)
	q.str("q", params.Q)
	q.number("limit", params.Limit)
	q.number("offset", params.Offset)
	q.str("order", params.Order)
	q.str("orderBy", params.OrderBy)
	q.str("status", params.Status)
	q.list("platforms", params.Platforms)
	return c.get(ctx, OpListComments, "/comment/", q.values())
}

// CreateComment creates a comment from a JSON object body.
func (c *HTTPClient) CreateComment(ctx context.Context, body json.RawMessage) (json.RawMessage, error) {
	return c.sendRaw(ctx, OpCreateComment, http.MethodPost, "/comment/", body)
}

// GetComment retrieves one comment.
func (c *HTTPClient) GetComment(ctx context.Context, id string) (json.RawMessage, error) {
	return c.get(ctx, OpGetComment, resourcePath("/comment/", id), nil)
}

// UpdateComment updates a comment from a JSON object body.
func (c *HTTPClient) UpdateComment(ctx context.Context, id string, body json.RawMessage) (json.RawMessage, error) {
	return c.sendRaw(ctx, OpUpdateComment, http.MethodPatch, resourcePath("/comment/", id), body)
}

// DeleteComment deletes a comment.
func (c *HTTPClient) DeleteComment(ctx context.Context, id string) (json.RawMessage, error) {
	return c.do(ctx, OpDeleteComment, request{method: http.MethodDelete, path: resourcePath("/comment/", id)})
}
