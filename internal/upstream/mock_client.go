// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package upstream

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/goccy/go-json"
)

// Ensure MockClient implements Client
var _ Client = (*MockClient)(nil)

// Call records one MockClient invocation.
type Call struct {
	Operation string
	Args      []any
}

// Arg returns the i-th recorded argument (after the context), or nil.
func (c Call) Arg(i int) any {
	if i < 0 || i >= len(c.Args) {
		return nil
	}
	return c.Args[i]
}

// MockClient is a recording test double for Client.
//
// Every call is recorded before anything else happens. Operations return,
// in order of precedence: the error set with SetError, the typed value set
// with SetTeam/SetPost/SetAnalytics, the raw response set with SetResponse,
// or a default {"operation": "<name>"} document.
//
// CreateUpload drains the file body so tests can assert on the bytes read.
type MockClient struct {
	mu        sync.Mutex
	calls     []Call
	responses map[string]json.RawMessage
	errs      map[string]error
	teams     map[string]*Team
	posts     map[string]*Post
	analytics map[string]*SocialAccountAnalytics
	uploaded  [][]byte
}

// NewMockClient creates an empty MockClient.
func NewMockClient() *MockClient {
	return &MockClient{
		responses: make(map[string]json.RawMessage),
		errs:      make(map[string]error),
		teams:     make(map[string]*Team),
		posts:     make(map[string]*Post),
		analytics: make(map[string]*SocialAccountAnalytics),
	}
}

// SetResponse sets the raw JSON returned by operation. An empty string
// makes the operation return an empty body.
func (m *MockClient) SetResponse(operation, raw string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if raw == "" {
		m.responses[operation] = nil
		return
	}
	m.responses[operation] = json.RawMessage(raw)
}

// SetError makes operation fail with err.
func (m *MockClient) SetError(operation string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs[operation] = err
}

// SetTeam registers the team returned by GetTeam for team.ID.
func (m *MockClient) SetTeam(team *Team) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.teams[team.ID] = team
}

// SetPost registers the post returned by GetPost for post.ID.
func (m *MockClient) SetPost(post *Post) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.posts[post.ID] = post
}

// SetAnalytics registers the SocialAccountAnalytics result for a platform.
func (m *MockClient) SetAnalytics(platformType string, analytics *SocialAccountAnalytics) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.analytics[platformType] = analytics
}

// Calls returns a copy of every recorded call in order.
func (m *MockClient) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Call, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallsTo returns the recorded calls of one operation.
func (m *MockClient) CallsTo(operation string) []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Call
	for _, c := range m.calls {
		if c.Operation == operation {
			out = append(out, c)
		}
	}
	return out
}

// Uploaded returns the file bodies received by CreateUpload.
func (m *MockClient) Uploaded() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]byte, len(m.uploaded))
	copy(out, m.uploaded)
	return out
}

// Reset clears recorded calls and all configured responses.
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
	m.uploaded = nil
	m.responses = make(map[string]json.RawMessage)
	m.errs = make(map[string]error)
	m.teams = make(map[string]*Team)
	m.posts = make(map[string]*Post)
	m.analytics = make(map[string]*SocialAccountAnalytics)
}

func (m *MockClient) record(operation string, args ...any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, Call{Operation: operation, Args: args})
	return m.errs[operation]
}

func (m *MockClient) respond(ctx context.Context, operation string, args ...any) (json.RawMessage, error) {
	if err := m.record(operation, args...); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if raw, ok := m.responses[operation]; ok {
		return raw, nil
	}
	return json.RawMessage(fmt.Sprintf(`{"operation":%q}`, operation)), nil
}

func (m *MockClient) Health(ctx context.Context) (json.RawMessage, error) {
	return m.respond(ctx, OpHealth)
}

func (m *MockClient) Organization(ctx context.Context) (json.RawMessage, error) {
	return m.respond(ctx, OpOrganization)
}

func (m *MockClient) ListTeams(ctx context.Context, params ListTeamsParams) (json.RawMessage, error) {
	return m.respond(ctx, OpListTeams, params)
}

func (m *MockClient) CreateTeam(ctx context.Context, req *CreateTeamRequest) (json.RawMessage, error) {
	return m.respond(ctx, OpCreateTeam, req)
}

// GetTeam returns the team registered with SetTeam, or a team with no
// social accounts.
func (m *MockClient) GetTeam(ctx context.Context, id string) (*Team, error) {
	if err := m.record(OpGetTeam, id); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if team, ok := m.teams[id]; ok {
		return team, nil
	}
	return &Team{ID: id, SocialAccounts: []SocialAccount{}}, nil
}

func (m *MockClient) UpdateTeam(ctx context.Context, id string, req *UpdateTeamRequest) (json.RawMessage, error) {
	return m.respond(ctx, OpUpdateTeam, id, req)
}

func (m *MockClient) DeleteTeam(ctx context.Context, id string) (json.RawMessage, error) {
	return m.respond(ctx, OpDeleteTeam, id)
}

func (m *MockClient) CreatePortalLink(ctx context.Context, req *PortalLinkRequest) (json.RawMessage, error) {
	return m.respond(ctx, OpCreatePortalLink, req)
}

func (m *MockClient) ConnectSocialAccount(ctx context.Context, req *ConnectRequest) (json.RawMessage, error) {
	return m.respond(ctx, OpConnectSocialAccount, req)
}

func (m *MockClient) SetChannel(ctx context.Context, req *SetChannelRequest) (json.RawMessage, error) {
	return m.respond(ctx, OpSetChannel, req)
}

func (m *MockClient) RefreshChannels(ctx context.Context, req *RefreshChannelsRequest) (json.RawMessage, error) {
	return m.respond(ctx, OpRefreshChannels, req)
}

func (m *MockClient) DisconnectSocialAccount(ctx context.Context, req *DisconnectRequest) (json.RawMessage, error) {
	return m.respond(ctx, OpDisconnectSocialAccount, req)
}

func (m *MockClient) ListUploads(ctx context.Context, params ListUploadsParams) (json.RawMessage, error) {
	return m.respond(ctx, OpListUploads, params)
}

func (m *MockClient) GetUpload(ctx context.Context, id string) (json.RawMessage, error) {
	return m.respond(ctx, OpGetUpload, id)
}

func (m *MockClient) CreateUpload(ctx context.Context, file *UploadFile) (json.RawMessage, error) {
	if file != nil && file.Body != nil {
		data, err := io.ReadAll(file.Body)
		if err != nil {
			return nil, fmt.Errorf("%s: read file: %w", OpCreateUpload, err)
		}
		m.mu.Lock()
		m.uploaded = append(m.uploaded, data)
		m.mu.Unlock()
	}
	return m.respond(ctx, OpCreateUpload, file)
}

func (m *MockClient) InitLargeUpload(ctx context.Context, req *InitUploadRequest) (json.RawMessage, error) {
	return m.respond(ctx, OpInitLargeUpload, req)
}

func (m *MockClient) FinalizeLargeUpload(ctx context.Context, req *FinalizeUploadRequest) (json.RawMessage, error) {
	return m.respond(ctx, OpFinalizeLargeUpload, req)
}

func (m *MockClient) ListPosts(ctx context.Context, params ListPostsParams) (json.RawMessage, error) {
	return m.respond(ctx, OpListPosts, params)
}

func (m *MockClient) CreatePost(ctx context.Context, body json.RawMessage) (json.RawMessage, error) {
	return m.respond(ctx, OpCreatePost, body)
}

// GetPost returns the post registered with SetPost, or a post without data.
func (m *MockClient) GetPost(ctx context.Context, id string) (*Post, error) {
	if err := m.record(OpGetPost, id); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if post, ok := m.posts[id]; ok {
		return post, nil
	}
	return &Post{ID: id, Data: map[string]json.RawMessage{}}, nil
}

func (m *MockClient) UpdatePost(ctx context.Context, id string, body json.RawMessage) (json.RawMessage, error) {
	return m.respond(ctx, OpUpdatePost, id, body)
}

func (m *MockClient) DeletePost(ctx context.Context, id string) (json.RawMessage, error) {
	return m.respond(ctx, OpDeletePost, id)
}

func (m *MockClient) RetryPost(ctx context.Context, id string) (json.RawMessage, error) {
	return m.respond(ctx, OpRetryPost, id)
}

// SocialAccountAnalytics returns the result registered for the platform,
// or an empty series.
func (m *MockClient) SocialAccountAnalytics(ctx context.Context, params SocialAccountAnalyticsParams) (*SocialAccountAnalytics, error) {
	if err := m.record(OpSocialAccountAnalytics, params); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if analytics, ok := m.analytics[params.PlatformType]; ok {
		return analytics, nil
	}
	return &SocialAccountAnalytics{Items: []json.RawMessage{}}, nil
}

func (m *MockClient) PostAnalytics(ctx context.Context, params PostAnalyticsParams) (json.RawMessage, error) {
	return m.respond(ctx, OpPostAnalytics, params)
}

func (m *MockClient) ForceSocialAccountAnalytics(ctx context.Context, req *ForceSocialAccountAnalyticsRequest) (json.RawMessage, error) {
	return m.respond(ctx, OpForceSocialAccountAnalytics, req)
}

func (m *MockClient) ForcePostAnalytics(ctx context.Context, req *ForcePostAnalyticsRequest) (json.RawMessage, error) {
	return m.respond(ctx, OpForcePostAnalytics, req)
}

func (m *MockClient) ListComments(ctx context.Context, params ListCommentsParams) (json.RawMessage, error) {
	return m.respond(ctx, OpListComments, params)
}

func (m *MockClient) CreateComment(ctx context.Context, body json.RawMessage) (json.RawMessage, error) {
	return m.respond(ctx, OpCreateComment, body)
}

func (m *MockClient) GetComment(ctx context.Context, id string) (json.RawMessage, error) {
	return m.respond(ctx, OpGetComment, id)
}

func (m *MockClient) UpdateComment(ctx context.Context, id string, body json.RawMessage) (json.RawMessage, error) {
	return m.respond(ctx, OpUpdateComment, id, body)
}

func (m *MockClient) DeleteComment(ctx context.Context, id string) (json.RawMessage, error) {
	return m.respond(ctx, OpDeleteComment, id)
}
