// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/bundlerelay/internal/models"
	"github.com/tomtom215/bundlerelay/internal/params"
	"github.com/tomtom215/bundlerelay/internal/upstream"
)

// isoMillis formats UTC timestamps the way bundle.social expects them.
const isoMillis = "2006-01-02T15:04:05.000Z"

const defaultInstagramTitle = "Instagram Post"

type instagramChannelBody struct {
	TeamID    any `json:"teamId"`
	ChannelID any `json:"channelId"`
}

type instagramPostBody struct {
	TeamID        any `json:"teamId"`
	Type          any `json:"type"`
	Title         any `json:"title"`
	Text          any `json:"text"`
	Status        any `json:"status"`
	PostDate      any `json:"postDate"`
	UploadIDs     any `json:"uploadIds"`
	ShareToFeed   any `json:"shareToFeed"`
	Collaborators any `json:"collaborators"`
	Tagged        any `json:"tagged"`
}

// InstagramCreateTeam creates a team, defaulting the name and tier from
// configuration.
//
// @Summary Create Instagram team
// @Tags Instagram
// @Accept json
// @Produce json
// @Success 201 {object} object
// @Router /api/instagram/teams [post]
func (h *Handler) InstagramCreateTeam(w http.ResponseWriter, r *http.Request) {
	var body createTeamBody
	if err := h.decodeBody(w, r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	req := &upstream.CreateTeamRequest{
		Name:       stringOr(body.Name, h.config.Defaults.TeamName),
		Tier:       h.teamTier(body.Tier),
		AvatarURL:  stringOr(body.AvatarURL, ""),
		CopyTeamID: stringOr(body.CopyTeamID, ""),
	}
	if err := validatePayload(req); err != nil {
		writeError(w, r, err)
		return
	}

	raw, err := h.client.CreateTeam(r.Context(), req)
	respond(w, r, http.StatusCreated, raw, err)
}

// InstagramGetTeam returns a team with its social accounts.
//
// @Summary Get Instagram team
// @Tags Instagram
// @Produce json
// @Param teamId path string true "Team ID"
// @Success 200 {object} object
// @Router /api/instagram/teams/{teamId} [get]
func (h *Handler) InstagramGetTeam(w http.ResponseWriter, r *http.Request) {
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
	writeJSON(w, http.StatusOK, team)
}

// InstagramPortalLink creates a portal link limited to Instagram.
//
// @Summary Instagram portal link
// @Tags Instagram
// @Accept json
// @Produce json
// @Success 201 {object} object
// @Failure 400 {object} ErrorBody
// @Router /api/instagram/accounts/portal-link [post]
func (h *Handler) InstagramPortalLink(w http.ResponseWriter, r *http.Request) {
	var body portalLinkBody
	if err := h.decodeBody(w, r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	teamID, err := params.RequireString("teamId", body.TeamID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	req := h.portalLinkRequest(teamID, []string{models.PlatformInstagram}, &body)
	h.createPortalLink(w, r, req)
}

// InstagramSetChannel selects the Instagram account's channel.
//
// @Summary Set Instagram channel
// @Tags Instagram
// @Accept json
// @Produce json
// @Success 200 {object} object
// @Failure 400 {object} ErrorBody
// @Router /api/instagram/accounts/channel [post]
func (h *Handler) InstagramSetChannel(w http.ResponseWriter, r *http.Request) {
	var body instagramChannelBody
	if err := h.decodeBody(w, r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	teamID, hasTeam := params.OptionalString(body.TeamID)
	channelID, hasChannel := params.OptionalString(body.ChannelID)
	if !hasTeam || !hasChannel {
		writeError(w, r, params.BadRequest("teamId and channelId are required"))
		return
	}

	req := &upstream.SetChannelRequest{TeamID: teamID, ChannelID: channelID, Type: models.PlatformInstagram}
	if err := validatePayload(req); err != nil {
		writeError(w, r, err)
		return
	}

	raw, err := h.client.SetChannel(r.Context(), req)
	respond(w, r, http.StatusOK, raw, err)
}

// InstagramCreatePost publishes Instagram media. The type is optional and
// falls back to the configured default post type.
//
// @Summary Create Instagram post
// @Tags Instagram
// @Accept json
// @Produce json
// @Success 201 {object} object
// @Failure 400 {object} ErrorBody
// @Router /api/instagram/posts [post]
func (h *Handler) InstagramCreatePost(w http.ResponseWriter, r *http.Request) {
	h.instagramPost(w, r, "")
}

// InstagramCreateFeedPost publishes a feed post.
//
// @Summary Create Instagram feed post
// @Tags Instagram
// @Accept json
// @Produce json
// @Success 201 {object} object
// @Router /api/instagram/posts/feed [post]
func (h *Handler) InstagramCreateFeedPost(w http.ResponseWriter, r *http.Request) {
	h.instagramPost(w, r, models.InstagramPost)
}

// InstagramCreateReel publishes a reel.
//
// @Summary Create Instagram reel
// @Tags Instagram
// @Accept json
// @Produce json
// @Success 201 {object} object
// @Router /api/instagram/posts/reel [post]
func (h *Handler) InstagramCreateReel(w http.ResponseWriter, r *http.Request) {
	h.instagramPost(w, r, models.InstagramReel)
}

// InstagramCreateStory publishes a story.
//
// @Summary Create Instagram story
// @Tags Instagram
// @Accept json
// @Produce json
// @Success 201 {object} object
// @Router /api/instagram/posts/story [post]
func (h *Handler) InstagramCreateStory(w http.ResponseWriter, r *http.Request) {
	h.instagramPost(w, r, models.InstagramStory)
}

// instagramPost builds and sends an Instagram post. An empty fixedType
// reads the type from the body.
func (h *Handler) instagramPost(w http.ResponseWriter, r *http.Request, fixedType string) {
	var body instagramPostBody
	if err := h.decodeBody(w, r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	postType := fixedType
	if postType == "" {
		var err error
		if postType, err = h.instagramPostType(body.Type); err != nil {
			writeError(w, r, err)
			return
		}
	}

	req, err := h.instagramPostRequest(&body, postType, time.Now())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if err := validatePayload(req); err != nil {
		writeError(w, r, err)
		return
	}

	payload, err := json.Marshal(req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	raw, err := h.client.CreatePost(r.Context(), payload)
	respond(w, r, http.StatusCreated, raw, err)
}

func (h *Handler) instagramPostType(v any) (string, error) {
	if _, given := params.OptionalString(v); !given {
		return h.config.Defaults.Post.Type, nil
	}
	postType, ok := params.EnumMember(v, models.InstagramPostTypes)
	if !ok {
		return "", params.BadRequest("type must be one of POST, REEL or STORY when provided")
	}
	return postType, nil
}

// instagramPostRequest assembles the post payload from the body and the
// configured post defaults.
func (h *Handler) instagramPostRequest(body *instagramPostBody, postType string, now time.Time) (*upstream.InstagramPostRequest, error) {
	teamID, err := params.RequireString("teamId", body.TeamID)
	if err != nil {
		return nil, err
	}
	text, err := params.RequireString("text", body.Text)
	if err != nil {
		return nil, err
	}
	uploadIDs, err := instagramUploadIDs(body.UploadIDs)
	if err != nil {
		return nil, err
	}

	defaults := h.config.Defaults.Post

	status, ok := params.EnumMember(body.Status, models.DefaultPostStatuses)
	if !ok {
		status = defaults.Status
	}
	shareToFeed, ok := params.OptionalFlag(body.ShareToFeed)
	if !ok {
		shareToFeed = defaults.ShareToFeed
	}
	collaborators, _ := params.StringList(body.Collaborators)

	data := upstream.InstagramPostData{
		Type:          postType,
		Text:          text,
		UploadIDs:     uploadIDs,
		ShareToFeed:   shareToFeed,
		Collaborators: collaborators,
		Tagged:        instagramTags(body.Tagged),
	}

	return &upstream.InstagramPostRequest{
		TeamID:             teamID,
		Title:              stringOr(body.Title, defaultInstagramTitle),
		Status:             status,
		PostDate:           stringOr(body.PostDate, now.Add(defaults.ScheduleOffset()).UTC().Format(isoMillis)),
		SocialAccountTypes: []string{models.PlatformInstagram},
		Data:               map[string]upstream.InstagramPostData{models.PlatformInstagram: data},
	}, nil
}

func instagramUploadIDs(v any) ([]string, error) {
	items, ok := v.([]any)
	if !ok || len(items) == 0 {
		return nil, params.BadRequest("At least one uploadId is required")
	}
	ids, _ := params.StringList(items)
	if len(ids) == 0 {
		return nil, params.BadRequest("uploadIds must contain valid values")
	}
	return ids, nil
}

// instagramTags keeps the tag objects that name a user. Missing coordinates
// default to 0.
func instagramTags(v any) []upstream.InstagramTag {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	var tags []upstream.InstagramTag
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		username, ok := params.OptionalString(obj["username"])
		if !ok {
			continue
		}
		x, _ := params.OptionalNumber(obj["x"])
		y, _ := params.OptionalNumber(obj["y"])
		tags = append(tags, upstream.InstagramTag{Username: username, X: x, Y: y})
	}
	return tags
}

// InstagramGetPost returns one post.
//
// @Summary Get Instagram post
// @Tags Instagram
// @Produce json
// @Param postId path string true "Post ID"
// @Success 200 {object} object
// @Router /api/instagram/posts/{postId} [get]
func (h *Handler) InstagramGetPost(w http.ResponseWriter, r *http.Request) {
	h.getPost(w, r, "postId")
}

// InstagramRetryPost retries a failed post.
//
// @Summary Retry Instagram post
// @Tags Instagram
// @Param postId path string true "Post ID"
// @Success 200 {object} object
// @Router /api/instagram/posts/{postId}/retry [post]
func (h *Handler) InstagramRetryPost(w http.ResponseWriter, r *http.Request) {
	h.retryPost(w, r, "postId")
}
