// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package upstream

import (
	"context"

	"github.com/goccy/go-json"
)

// Operation names, used as metric labels, error prefixes and MockClient keys.
const (
	OpHealth                      = "Health"
	OpOrganization                = "Organization"
	OpListTeams                   = "ListTeams"
	OpCreateTeam                  = "CreateTeam"
	OpGetTeam                     = "GetTeam"
	OpUpdateTeam                  = "UpdateTeam"
	OpDeleteTeam                  = "DeleteTeam"
	OpCreatePortalLink            = "CreatePortalLink"
	OpConnectSocialAccount        = "ConnectSocialAccount"
	OpSetChannel                  = "SetChannel"
	OpRefreshChannels             = "RefreshChannels"
	OpDisconnectSocialAccount     = "DisconnectSocialAccount"
	OpListUploads                 = "ListUploads"
	OpGetUpload                   = "GetUpload"
	OpCreateUpload                = "CreateUpload"
	OpInitLargeUpload             = "InitLargeUpload"
	OpFinalizeLargeUpload         = "FinalizeLargeUpload"
	OpListPosts                   = "ListPosts"
	OpCreatePost                  = "CreatePost"
	OpGetPost                     = "GetPost"
	OpUpdatePost                  = "UpdatePost"
	OpDeletePost                  = "DeletePost"
	OpRetryPost                   = "RetryPost"
	OpSocialAccountAnalytics      = "SocialAccountAnalytics"
	OpPostAnalytics               = "PostAnalytics"
	OpForceSocialAccountAnalytics = "ForceSocialAccountAnalytics"
	OpForcePostAnalytics          = "ForcePostAnalytics"
	OpListComments                = "ListComments"
	OpCreateComment               = "CreateComment"
	OpGetComment                  = "GetComment"
	OpUpdateComment               = "UpdateComment"
	OpDeleteComment               = "DeleteComment"
)

// Client defines the bundle.social operations used by the relay.
// HTTPClient, CircuitBreakerClient and MockClient implement it.
//
// A nil json.RawMessage with a nil error means bundle.social answered 2xx
// with an empty body.
type Client interface {
	Health(ctx context.Context) (json.RawMessage, error)
	Organization(ctx context.Context) (json.RawMessage, error)

	ListTeams(ctx context.Context, params ListTeamsParams) (json.RawMessage, error)
	CreateTeam(ctx context.Context, req *CreateTeamRequest) (json.RawMessage, error)
	GetTeam(ctx context.Context, id string) (*Team, error)
	UpdateTeam(ctx context.Context, id string, req *UpdateTeamRequest) (json.RawMessage, error)
	DeleteTeam(ctx context.Context, id string) (json.RawMessage, error)

	CreatePortalLink(ctx context.Context, req *PortalLinkRequest) (json.RawMessage, error)
	ConnectSocialAccount(ctx context.Context, req *ConnectRequest) (json.RawMessage, error)
	SetChannel(ctx context.Context, req *SetChannelRequest) (json.RawMessage, error)
	RefreshChannels(ctx context.Context, req *RefreshChannelsRequest) (json.RawMessage, error)
	DisconnectSocialAccount(ctx context.Context, req *DisconnectRequest) (json.RawMessage, error)

	ListUploads(ctx context.Context, params ListUploadsParams) (json.RawMessage, error)
	GetUpload(ctx context.Context, id string) (json.RawMessage, error)
	CreateUpload(ctx context.Context, file *UploadFile) (json.RawMessage, error)
	InitLargeUpload(ctx context.Context, req *InitUploadRequest) (json.RawMessage, error)
	FinalizeLargeUpload(ctx context.Context, req *FinalizeUploadRequest) (json.RawMessage, error)

	ListPosts(ctx context.Context, params ListPostsParams) (json.RawMessage, error)
	CreatePost(ctx context.Context, body json.RawMessage) (json.RawMessage, error)
	GetPost(ctx context.Context, id string) (*Post, error)
	UpdatePost(ctx context.Context, id string, body json.RawMessage) (json.RawMessage, error)
	DeletePost(ctx context.Context, id string) (json.RawMessage, error)
	RetryPost(ctx context.Context, id string) (json.RawMessage, error)

	SocialAccountAnalytics(ctx context.Context, params SocialAccountAnalyticsParams) (*SocialAccountAnalytics, error)
	PostAnalytics(ctx context.Context, params PostAnalyticsParams) (json.RawMessage, error)
	ForceSocialAccountAnalytics(ctx context.Context, req *ForceSocialAccountAnalyticsRequest) (json.RawMessage, error)
	ForcePostAnalytics(ctx context.Context, req *ForcePostAnalyticsRequest) (json.RawMessage, error)

	ListComments(ctx context.Context, params ListCommentsParams) (json.RawMessage, error)
	CreateComment(ctx context.Context, body json.RawMessage) (json.RawMessage, error)
	GetComment(ctx context.Context, id string) (json.RawMessage, error)
	UpdateComment(ctx context.Context, id string, body json.RawMessage) (json.RawMessage, error)
	DeleteComment(ctx context.Context, id string) (json.RawMessage, error)
}
