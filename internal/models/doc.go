// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

/*
Package models holds the bundle.social vocabulary shared by the handlers.

Enumerations are declared as params.Enum values so that request input can
be matched case-insensitively and rewritten to the canonical spelling:

  - Platforms and SocialAccountTypes: every publishing target
  - AnalyticsPlatforms, CommentPlatforms: the subsets that support analytics
    and comments
  - ChannelSelectablePlatforms, RefreshablePlatforms: account capabilities
  - PostStatuses, CommentStatuses, UploadStatuses, UploadTypes,
    UploadMimeTypes, TeamTiers, PortalLanguages, SortOrders and the order-by
    field sets

Usage Example:

	types, ok := params.EnumSet(params.Query(r, "platforms"), models.SocialAccountTypes)
	if ok && len(types) > 0 {
	    p.Platforms = types
	}

AggregateAnalytics folds raw analytics items into AnalyticsTotals. Counters
that are missing, null or not numeric count as zero.
*/
package models
