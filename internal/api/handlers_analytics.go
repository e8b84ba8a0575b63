// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package api

import (
	"net/http"

	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/bundlerelay/internal/models"
	"github.com/tomtom215/bundlerelay/internal/params"
	"github.com/tomtom215/bundlerelay/internal/upstream"
)

type platformTypeBody struct {
	PlatformType any `json:"platformType"`
}

// teamAnalyticsEntry is the analytics of one platform account of a team.
type teamAnalyticsEntry struct {
	PlatformType  string                 `json:"platformType"`
	SocialAccount json.RawMessage        `json:"socialAccount"`
	Totals        models.AnalyticsTotals `json:"totals"`
	Entries       []json.RawMessage      `json:"entries"`
}

type teamAnalyticsResponse struct {
	TeamID    string               `json:"teamId"`
	Analytics []teamAnalyticsEntry `json:"analytics"`
}

// postAnalyticsResponse carries the upstream results unchanged, one per
// queried platform.
type postAnalyticsResponse struct {
	PostID    string            `json:"postId"`
	Analytics []json.RawMessage `json:"analytics"`
}

// analyticsPlatform canonicalizes v as an analytics platform. Any input
// that is not a member, blank included, is rejected.
func analyticsPlatform(v any) (string, error) {
	if platform, ok := params.EnumMember(v, models.AnalyticsPlatforms); ok {
		return platform, nil
	}
	return "", &params.InvalidEnumError{Field: "platformType", Allowed: models.AnalyticsPlatforms.Values()}
}

// queryGiven returns the raw query value when the key carries anything but
// an empty string.
func queryGiven(r *http.Request, key string) (any, bool) {
	v := params.Query(r, key)
	if v == nil || v == "" {
		return nil, false
	}
	return v, true
}

// analyticsTypes returns the distinct analytics-capable account types of a
// team, in account order.
func analyticsTypes(team *upstream.Team) []string {
	seen := make(map[string]struct{}, len(team.SocialAccounts))
	var types []string
	for _, account := range team.SocialAccounts {
		if !models.AnalyticsPlatforms.Contains(account.Type) {
			continue
		}
		if _, dup := seen[account.Type]; dup {
			continue
		}
		seen[account.Type] = struct{}{}
		types = append(types, account.Type)
	}
	return types
}

// TeamAnalytics collects analytics for every analytics-capable platform a
// team has connected. Platforms are queried concurrently.
//
// @Summary Team analytics
// @Tags Analytics
// @Produce json
// @Param teamId path string true "Team ID"
// @Success 200 {object} teamAnalyticsResponse
// @Failure 404 {object} ErrorBody
// @Router /api/v1/analytics/team/{teamId} [get]
func (h *Handler) TeamAnalytics(w http.ResponseWriter, r *http.Request) {
	teamID, err := pathParam(r, "teamId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	team, err := h.client.GetTeam(r.Context(), teamID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	types := analyticsTypes(team)
	if len(types) == 0 {
		writeError(w, r, notFound("Team does not have analytics-enabled social accounts"))
		return
	}

	entries := make([]teamAnalyticsEntry, len(types))
	g, ctx := errgroup.WithContext(r.Context())
	for i, platform := range types {
		g.Go(func() error {
			result, err := h.client.SocialAccountAnalytics(ctx, upstream.SocialAccountAnalyticsParams{
				TeamID:       teamID,
				PlatformType: platform,
			})
			if err != nil {
				return err
			}
			items := result.Items
			if items == nil {
				items = []json.RawMessage{}
			}
			entries[i] = teamAnalyticsEntry{
				PlatformType:  platform,
				SocialAccount: result.SocialAccount,
				Totals:        models.AggregateAnalytics(items),
				Entries:       items,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, teamAnalyticsResponse{TeamID: teamID, Analytics: entries})
}

// ForceTeamAnalytics asks bundle.social to refresh a team's analytics for
// one platform.
//
// @Summary Refresh team analytics
// @Tags Analytics
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID"
// @Success 200 {object} object
// @Failure 400 {object} ErrorBody
// @Router /api/v1/analytics/team/{teamId}/force-refresh [post]
func (h *Handler) ForceTeamAnalytics(w http.ResponseWriter, r *http.Request) {
	teamID, err := pathParam(r, "teamId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var body platformTypeBody
	if err := h.decodeBody(w, r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	platform, err := params.RequireEnum("platformType", body.PlatformType, models.AnalyticsPlatforms)
	if err != nil {
		writeError(w, r, err)
		return
	}

	req := &upstream.ForceSocialAccountAnalyticsRequest{TeamID: teamID, PlatformType: platform}
	if err := validatePayload(req); err != nil {
		writeError(w, r, err)
		return
	}

	raw, err := h.client.ForceSocialAccountAnalytics(r.Context(), req)
	respond(w, r, http.StatusOK, raw, err)
}

// SocialAccountAnalytics returns the analytics of one account, queried for
// the account's own platform.
//
// @Summary Social account analytics
// @Tags Analytics
// @Produce json
// @Param id path string true "Social account ID"
// @Param teamId query string true "Team ID"
// @Success 200 {object} object
// @Failure 404 {object} ErrorBody
// @Router /api/v1/analytics/social-account/{id} [get]
func (h *Handler) SocialAccountAnalytics(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	teamID, err := params.RequireString("teamId", params.Query(r, "teamId"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	account, err := h.findSocialAccount(r.Context(), teamID, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	platform, err := analyticsPlatform(account.Type)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.client.SocialAccountAnalytics(r.Context(), upstream.SocialAccountAnalyticsParams{
		TeamID:       teamID,
		PlatformType: platform,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// postAnalyticsPlatforms returns the analytics platforms the post carries
// data for, in analytics platform order.
func postAnalyticsPlatforms(post *upstream.Post) []string {
	var platforms []string
	for _, platform := range models.AnalyticsPlatforms.Values() {
		if post.HasPlatformData(platform) {
			platforms = append(platforms, platform)
		}
	}
	return platforms
}

// PostAnalytics returns a post's analytics. Without a platformType every
// analytics platform present in the post is queried concurrently.
//
// @Summary Post analytics
// @Tags Analytics
// @Produce json
// @Param postId path string true "Post ID"
// @Param platformType query string false "Platform"
// @Success 200 {object} postAnalyticsResponse
// @Failure 404 {object} ErrorBody
// @Router /api/v1/analytics/post/{postId} [get]
func (h *Handler) PostAnalytics(w http.ResponseWriter, r *http.Request) {
	postID, err := pathParam(r, "postId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var platforms []string
	if requested, given := queryGiven(r, "platformType"); given {
		platform, err := analyticsPlatform(requested)
		if err != nil {
			writeError(w, r, err)
			return
		}
		platforms = []string{platform}
	} else {
		post, err := h.client.GetPost(r.Context(), postID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		platforms = postAnalyticsPlatforms(post)
		if len(platforms) == 0 {
			writeError(w, r, notFound("Post does not include analytics-enabled platforms"))
			return
		}
	}

	results := make([]json.RawMessage, len(platforms))
	g, ctx := errgroup.WithContext(r.Context())
	for i, platform := range platforms {
		g.Go(func() error {
			result, err := h.client.PostAnalytics(ctx, upstream.PostAnalyticsParams{
				PostID:       postID,
				PlatformType: platform,
			})
			if err != nil {
				return err
			}
			if result == nil {
				result = json.RawMessage("null")
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, postAnalyticsResponse{PostID: postID, Analytics: results})
}

// ForcePostAnalytics asks bundle.social to refresh a post's analytics.
//
// @Summary Refresh post analytics
// @Tags Analytics
// @Accept json
// @Produce json
// @Param postId path string true "Post ID"
// @Success 200 {object} object
// @Failure 400 {object} ErrorBody
// @Router /api/v1/analytics/post/{postId}/force-refresh [post]
func (h *Handler) ForcePostAnalytics(w http.ResponseWriter, r *http.Request) {
	postID, err := pathParam(r, "postId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var body platformTypeBody
	if err := h.decodeBody(w, r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	platform, err := params.RequireEnum("platformType", body.PlatformType, models.AnalyticsPlatforms)
	if err != nil {
		writeError(w, r, err)
		return
	}

	req := &upstream.ForcePostAnalyticsRequest{PostID: postID, PlatformType: platform}
	if err := validatePayload(req); err != nil {
		writeError(w, r, err)
		return
	}

	raw, err := h.client.ForcePostAnalytics(r.Context(), req)
	respond(w, r, http.StatusOK, raw, err)
}
