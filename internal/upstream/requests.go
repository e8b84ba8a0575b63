// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package upstream

import (
	"io"
)

// Request payloads sent to bundle.social. Optional strings use omitempty;
// optional flags and numbers are pointers so an explicit false or 0 is
// still forwarded. validate tags are checked by the handlers before the
// call is made.

// ListTeamsParams filters GET /team/.
type ListTeamsParams struct {
	Limit  *float64
	Offset *float64
}

// CreateTeamRequest is the POST /team/ body.
type CreateTeamRequest struct {
	Name       string `json:"name" validate:"required,notblank,max=255"`
	Tier       string `json:"tier" validate:"required,oneof=FREE PRO BUSINESS"`
	AvatarURL  string `json:"avatarUrl,omitempty"`
	CopyTeamID string `json:"copyTeamId,omitempty"`
}

// UpdateTeamRequest is the PATCH /team/{id} body.
type UpdateTeamRequest struct {
	Name      string `json:"name,omitempty" validate:"required_without=AvatarURL"`
	AvatarURL string `json:"avatarUrl,omitempty" validate:"required_without=Name"`
}

// PortalLinkRequest is the POST /social-account/create-portal-link body.
type PortalLinkRequest struct {
	TeamID             string   `json:"teamId" validate:"required,notblank"`
	RedirectURL        string   `json:"redirectUrl" validate:"required"`
	SocialAccountTypes []string `json:"socialAccountTypes" validate:"required,min=1,dive,oneof=TIKTOK YOUTUBE INSTAGRAM FACEBOOK TWITTER THREADS LINKEDIN PINTEREST REDDIT MASTODON DISCORD SLACK BLUESKY GOOGLE_BUSINESS"`
	Language           string   `json:"language,omitempty" validate:"omitempty,oneof=en pl fr hi sv de es it nl pt ru tr zh"`
	LogoURL            string   `json:"logoUrl,omitempty"`
	UserLogoURL        string   `json:"userLogoUrl,omitempty"`
	UserName           string   `json:"userName,omitempty"`

	GoBackButtonText           *string  `json:"goBackButtonText,omitempty"`
	HideGoBackButton           *bool    `json:"hideGoBackButton,omitempty"`
	HideLanguageSwitcher       *bool    `json:"hideLanguageSwitcher,omitempty"`
	HidePoweredBy              *bool    `json:"hidePoweredBy,omitempty"`
	HideUserLogo               *bool    `json:"hideUserLogo,omitempty"`
	HideUserName               *bool    `json:"hideUserName,omitempty"`
	ShowModalOnConnectSuccess  *bool    `json:"showModalOnConnectSuccess,omitempty"`
	MaxSocialAccountsConnected *float64 `json:"maxSocialAccountsConnected,omitempty"`
}

// ConnectRequest is the POST /social-account/connect body.
type ConnectRequest struct {
	TeamID                    string `json:"teamId" validate:"required,notblank"`
	Type                      string `json:"type" validate:"required"`
	RedirectURL               string `json:"redirectUrl" validate:"required,notblank"`
	ServerURL                 string `json:"serverUrl,omitempty"`
	InstagramConnectionMethod string `json:"instagramConnectionMethod,omitempty" validate:"omitempty,oneof=FACEBOOK INSTAGRAM"`
}

// SetChannelRequest is the POST /social-account/set-channel body.
type SetChannelRequest struct {
	TeamID    string `json:"teamId" validate:"required,notblank"`
	ChannelID string `json:"channelId" validate:"required,notblank"`
	Type      string `json:"type" validate:"required,oneof=FACEBOOK INSTAGRAM LINKEDIN YOUTUBE GOOGLE_BUSINESS"`
}

// RefreshChannelsRequest is the POST /social-account/refresh-channels body.
type RefreshChannelsRequest struct {
	TeamID string `json:"teamId" validate:"required,notblank"`
	Type   string `json:"type" validate:"required,oneof=DISCORD SLACK REDDIT PINTEREST FACEBOOK INSTAGRAM LINKEDIN YOUTUBE GOOGLE_BUSINESS"`
}

// DisconnectRequest is the DELETE /social-account/disconnect body.
type DisconnectRequest struct {
	TeamID string `json:"teamId" validate:"required,notblank"`
	Type   string `json:"type" validate:"required"`
}

// ListUploadsParams filters GET /upload/.
type ListUploadsParams struct {
	TeamID string
	Status string
	Type   string
}

// UploadFile is one file streamed to POST /upload/ as multipart form data.
type UploadFile struct {
	TeamID      string    `validate:"required,notblank"`
	FileName    string    `validate:"required"`
	ContentType string    `validate:"required"`
	Body        io.Reader `validate:"required"`
}

// InitUploadRequest is the POST /upload/init body.
type InitUploadRequest struct {
	TeamID   string `json:"teamId,omitempty"`
	FileName string `json:"fileName" validate:"required,notblank"`
	MimeType string `json:"mimeType" validate:"required,oneof=image/jpg image/jpeg image/png video/mp4 application/pdf"`
}

// FinalizeUploadRequest is the POST /upload/finalize body.
type FinalizeUploadRequest struct {
	TeamID string `json:"teamId,omitempty"`
	Path   string `json:"path" validate:"required,notblank"`
}

// ListPostsParams filters GET /post/.
type ListPostsParams struct {
	TeamID    string
	Limit     *float64
	Offset    *float64
	Q         string
	Order     string
	OrderBy   string
	Status    string
	Platforms []string
}

// ListCommentsParams filters GET /comment/.
type ListCommentsParams struct {
	TeamID    string
	PostID    string
	Q         string
	Limit     *float64
	Offset    *float64
	Order     string
	OrderBy   string
	Status    string
	Platforms []string
}

// SocialAccountAnalyticsParams selects GET /analytics/social-account.
type SocialAccountAnalyticsParams struct {
	TeamID       string
	PlatformType string
}

// PostAnalyticsParams selects GET /analytics/post.
type PostAnalyticsParams struct {
	PostID       string
	PlatformType string
}

// ForceSocialAccountAnalyticsRequest is the POST /analytics/social-account/force body.
type ForceSocialAccountAnalyticsRequest struct {
	TeamID       string `json:"teamId" validate:"required,notblank"`
	PlatformType string `json:"platformType" validate:"required"`
}

// ForcePostAnalyticsRequest is the POST /analytics/post/force body.
type ForcePostAnalyticsRequest struct {
	PostID       string `json:"postId" validate:"required,notblank"`
	PlatformType string `json:"platformType" validate:"required"`
}

// InstagramTag places a user tag on Instagram media.
type InstagramTag struct {
	Username string  `json:"username" validate:"required,notblank"`
	X        float64 `json:"x" validate:"gte=0,lte=1"`
	Y        float64 `json:"y" validate:"gte=0,lte=1"`
}

// InstagramPostData is the data.INSTAGRAM block of a post.
type InstagramPostData struct {
	Type          string         `json:"type" validate:"required,oneof=POST REEL STORY"`
	Text          string         `json:"text" validate:"required,notblank"`
	UploadIDs     []string       `json:"uploadIds" validate:"required,min=1,dive,required"`
	ShareToFeed   bool           `json:"shareToFeed"`
	Collaborators []string       `json:"collaborators,omitempty" validate:"omitempty,dive,required"`
	Tagged        []InstagramTag `json:"tagged,omitempty" validate:"omitempty,dive"`
}

// InstagramPostRequest is the POST /post/ body built by the Instagram shortcuts.
type InstagramPostRequest struct {
	TeamID             string                       `json:"teamId" validate:"required,notblank"`
	Title              string                       `json:"title" validate:"required"`
	Status             string                       `json:"status" validate:"required,oneof=SCHEDULED DRAFT"`
	PostDate           string                       `json:"postDate" validate:"required"`
	SocialAccountTypes []string                     `json:"socialAccountTypes" validate:"required,min=1"`
	Data               map[string]InstagramPostData `json:"data" validate:"required,dive"`
}
