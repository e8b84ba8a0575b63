// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package models

import (
	"github.com/tomtom215/bundlerelay/internal/params"
)

// Platform identifiers as bundle.social names them. Social account types
// use the same identifiers.
const (
	PlatformTikTok         = "TIKTOK"
	PlatformYouTube        = "YOUTUBE"
	PlatformInstagram      = "INSTAGRAM"
	PlatformFacebook       = "FACEBOOK"
	PlatformTwitter        = "TWITTER"
	PlatformThreads        = "THREADS"
	PlatformLinkedIn       = "LINKEDIN"
	PlatformPinterest      = "PINTEREST"
	PlatformReddit         = "REDDIT"
	PlatformMastodon       = "MASTODON"
	PlatformDiscord        = "DISCORD"
	PlatformSlack          = "SLACK"
	PlatformBluesky        = "BLUESKY"
	PlatformGoogleBusiness = "GOOGLE_BUSINESS"
)

// Platforms is every platform bundle.social can publish to.
var Platforms = params.NewEnum("platform",
	PlatformTikTok, PlatformYouTube, PlatformInstagram, PlatformFacebook,
	PlatformTwitter, PlatformThreads, PlatformLinkedIn, PlatformPinterest,
	PlatformReddit, PlatformMastodon, PlatformDiscord, PlatformSlack,
	PlatformBluesky, PlatformGoogleBusiness,
)

// SocialAccountTypes is an alias of Platforms used where the value names
// an account rather than a publishing target.
var SocialAccountTypes = Platforms

// AnalyticsPlatforms are the platforms that report analytics.
var AnalyticsPlatforms = params.NewEnum("analyticsPlatform",
	PlatformTikTok, PlatformYouTube, PlatformInstagram, PlatformFacebook,
	PlatformThreads, PlatformReddit, PlatformPinterest, PlatformMastodon,
	PlatformLinkedIn, PlatformBluesky, PlatformGoogleBusiness,
)

// CommentPlatforms are the platforms that support comments.
var CommentPlatforms = params.NewEnum("commentPlatform",
	PlatformTikTok, PlatformYouTube, PlatformInstagram, PlatformFacebook,
	PlatformThreads, PlatformLinkedIn, PlatformReddit, PlatformMastodon,
	PlatformDiscord, PlatformSlack, PlatformBluesky,
)

// ChannelSelectablePlatforms are account types whose posting channel
// (page, organization, channel) can be chosen after connecting.
var ChannelSelectablePlatforms = params.NewEnum("channelSelectable",
	PlatformFacebook, PlatformInstagram, PlatformLinkedIn, PlatformYouTube, PlatformGoogleBusiness,
)

// RefreshablePlatforms are account types whose channel list can be
// refreshed from the platform.
var RefreshablePlatforms = params.NewEnum("refreshable",
	PlatformDiscord, PlatformSlack, PlatformReddit, PlatformPinterest, PlatformFacebook,
	PlatformInstagram, PlatformLinkedIn, PlatformYouTube, PlatformGoogleBusiness,
)

// Team tiers.
const (
	TeamTierFree     = "FREE"
	TeamTierPro      = "PRO"
	TeamTierBusiness = "BUSINESS"
)

var TeamTiers = params.NewEnum("tier", TeamTierFree, TeamTierPro, TeamTierBusiness)

// PortalLanguages are the hosted portal locales, lower case.
var PortalLanguages = params.NewEnum("language",
	"en", "pl", "fr", "hi", "sv", "de", "es", "it", "nl", "pt", "ru", "tr", "zh",
)

var InstagramConnectionMethods = params.NewEnum("instagramConnectionMethod", "FACEBOOK", "INSTAGRAM")

var (
	UploadStatuses  = params.NewEnum("status", "USED", "UNUSED")
	UploadTypes     = params.NewEnum("type", "image", "video", "document")
	UploadMimeTypes = params.NewEnum("mimeType",
		"image/jpg", "image/jpeg", "image/png", "video/mp4", "application/pdf",
	)
)

var SortOrders = params.NewEnum("order", "ASC", "DESC")

var PostOrderFields = params.NewEnum("orderBy",
	"createdAt", "updatedAt", "postDate", "postedDate", "deletedAt",
)

var CommentOrderFields = params.NewEnum("orderBy", "createdAt", "updatedAt", "deletedAt")

// Post statuses.
const (
	PostStatusDraft      = "DRAFT"
	PostStatusScheduled  = "SCHEDULED"
	PostStatusPosted     = "POSTED"
	PostStatusError      = "ERROR"
	PostStatusDeleted    = "DELETED"
	PostStatusProcessing = "PROCESSING"
	PostStatusReview     = "REVIEW"
	PostStatusRetrying   = "RETRYING"
)

var PostStatuses = params.NewEnum("status",
	PostStatusDraft, PostStatusScheduled, PostStatusPosted, PostStatusError,
	PostStatusDeleted, PostStatusProcessing, PostStatusReview, PostStatusRetrying,
)

var CommentStatuses = params.NewEnum("status",
	PostStatusDraft, PostStatusScheduled, PostStatusPosted, PostStatusError,
	PostStatusDeleted, PostStatusProcessing, PostStatusRetrying,
)

// DefaultPostStatuses are the statuses a new post may be created with.
var DefaultPostStatuses = params.NewEnum("status", PostStatusScheduled, PostStatusDraft)

// Instagram media types.
const (
	InstagramPost  = "POST"
	InstagramReel  = "REEL"
	InstagramStory = "STORY"
)

var InstagramPostTypes = params.NewEnum("type", InstagramPost, InstagramReel, InstagramStory)
