// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/tomtom215/bundlerelay/internal/models"
	"github.com/tomtom215/bundlerelay/internal/params"
	"github.com/tomtom215/bundlerelay/internal/upstream"
)

type portalLinkBody struct {
	TeamID             any `json:"teamId"`
	RedirectURL        any `json:"redirectUrl"`
	SocialAccountTypes any `json:"socialAccountTypes"`
	Language           any `json:"language"`
	LogoURL            any `json:"logoUrl"`
	UserLogoURL        any `json:"userLogoUrl"`
	UserName           any `json:"userName"`

	GoBackButtonText           any `json:"goBackButtonText"`
	HideGoBackButton           any `json:"hideGoBackButton"`
	HideLanguageSwitcher       any `json:"hideLanguageSwitcher"`
	HidePoweredBy              any `json:"hidePoweredBy"`
	HideUserLogo               any `json:"hideUserLogo"`
	HideUserName               any `json:"hideUserName"`
	ShowModalOnConnectSuccess  any `json:"showModalOnConnectSuccess"`
	MaxSocialAccountsConnected any `json:"maxSocialAccountsConnected"`
}

type connectBody struct {
	TeamID                    any `json:"teamId"`
	Type                      any `json:"type"`
	RedirectURL               any `json:"redirectUrl"`
	ServerURL                 any `json:"serverUrl"`
	InstagramConnectionMethod any `json:"instagramConnectionMethod"`
}

type updateSocialAccountBody struct {
	TeamID          any `json:"teamId"`
	ChannelID       any `json:"channelId"`
	RefreshChannels any `json:"refreshChannels"`
}

type teamIDBody struct {
	TeamID any `json:"teamId"`
}

// updateSocialAccountResponse reports which upstream calls a PATCH made.
type updateSocialAccountResponse struct {
	SetChannel      json.RawMessage `json:"setChannel,omitempty"`
	RefreshChannels json.RawMessage `json:"refreshChannels,omitempty"`
}

// CreatePortalLink creates a hosted portal link for connecting accounts.
//
// @Summary Create portal link
// @Tags Social Account
// @Accept json
// @Produce json
// @Success 201 {object} object
// @Failure 400 {object} ErrorBody
// @Router /api/v1/social-account/create-portal-link [post]
func (h *Handler) CreatePortalLink(w http.ResponseWriter, r *http.Request) {
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
	types, err := params.RequireEnumSet("socialAccountTypes", body.SocialAccountTypes, models.SocialAccountTypes)
	var missing *params.MissingFieldError
	if errors.As(err, &missing) {
		err = params.BadRequest("socialAccountTypes must include at least one platform")
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	req := h.portalLinkRequest(teamID, types, &body)
	h.createPortalLink(w, r, req)
}

// portalLinkRequest fills a portal link payload from the body and the
// configured portal defaults. Optional switches are copied only when they
// arrived with the right JSON type.
func (h *Handler) portalLinkRequest(teamID string, types []string, body *portalLinkBody) *upstream.PortalLinkRequest {
	defaults := h.config.Defaults
	language, ok := params.EnumMember(body.Language, models.PortalLanguages)
	if !ok {
		language = defaults.Portal.Language
	}

	return &upstream.PortalLinkRequest{
		TeamID:             teamID,
		RedirectURL:        stringOr(body.RedirectURL, defaults.RedirectURL),
		SocialAccountTypes: types,
		Language:           language,
		LogoURL:            stringOr(body.LogoURL, defaults.Portal.LogoURL),
		UserLogoURL:        stringOr(body.UserLogoURL, defaults.Portal.UserLogoURL),
		UserName:           stringOr(body.UserName, defaults.Portal.UserName),

		GoBackButtonText:           jsonString(body.GoBackButtonText),
		HideGoBackButton:           jsonBool(body.HideGoBackButton),
		HideLanguageSwitcher:       jsonBool(body.HideLanguageSwitcher),
		HidePoweredBy:              jsonBool(body.HidePoweredBy),
		HideUserLogo:               jsonBool(body.HideUserLogo),
		HideUserName:               jsonBool(body.HideUserName),
		ShowModalOnConnectSuccess:  jsonBool(body.ShowModalOnConnectSuccess),
		MaxSocialAccountsConnected: jsonNumber(body.MaxSocialAccountsConnected),
	}
}

func (h *Handler) createPortalLink(w http.ResponseWriter, r *http.Request, req *upstream.PortalLinkRequest) {
	if err := validatePayload(req); err != nil {
		writeError(w, r, err)
		return
	}
	raw, err := h.client.CreatePortalLink(r.Context(), req)
	respond(w, r, http.StatusCreated, raw, err)
}

// ConnectSocialAccount starts the OAuth connection of a platform account.
//
// @Summary Connect social account
// @Tags Social Account
// @Accept json
// @Produce json
// @Success 201 {object} object
// @Failure 400 {object} ErrorBody
// @Router /api/v1/social-account/connect [post]
func (h *Handler) ConnectSocialAccount(w http.ResponseWriter, r *http.Request) {
	var body connectBody
	if err := h.decodeBody(w, r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	redirectURL, err := params.RequireString("redirectUrl", body.RedirectURL)
	if err != nil {
		writeError(w, r, err)
		return
	}
	teamID, err := params.RequireString("teamId", body.TeamID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	accountType, err := params.RequireEnum("type", body.Type, models.Platforms)
	if err != nil {
		writeError(w, r, err)
		return
	}
	method, _ := params.EnumMember(body.InstagramConnectionMethod, models.InstagramConnectionMethods)

	req := &upstream.ConnectRequest{
		TeamID:                    teamID,
		Type:                      accountType,
		RedirectURL:               redirectURL,
		ServerURL:                 stringOr(body.ServerURL, ""),
		InstagramConnectionMethod: method,
	}
	if err := validatePayload(req); err != nil {
		writeError(w, r, err)
		return
	}

	raw, err := h.client.ConnectSocialAccount(r.Context(), req)
	respond(w, r, http.StatusCreated, raw, err)
}

// findSocialAccount resolves an account through its team.
func (h *Handler) findSocialAccount(ctx context.Context, teamID, accountID string) (*upstream.SocialAccount, error) {
	team, err := h.client.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	account, ok := team.FindSocialAccount(accountID)
	if !ok {
		return nil, notFound("No social account %s found for team %s", accountID, teamID)
	}
	return account, nil
}

// GetSocialAccount returns one account of a team.
//
// @Summary Get social account
// @Tags Social Account
// @Produce json
// @Param id path string true "Social account ID"
// @Param teamId query string true "Team ID"
// @Success 200 {object} object
// @Failure 404 {object} ErrorBody
// @Router /api/v1/social-account/{id} [get]
func (h *Handler) GetSocialAccount(w http.ResponseWriter, r *http.Request) {
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
	writeJSON(w, http.StatusOK, account)
}

// UpdateSocialAccount selects the account's channel and/or refreshes its
// channel list. The team ID may come from the body or the query string.
//
// @Summary Update social account
// @Tags Social Account
// @Accept json
// @Produce json
// @Param id path string true "Social account ID"
// @Success 200 {object} updateSocialAccountResponse
// @Failure 400 {object} ErrorBody
// @Router /api/v1/social-account/{id} [patch]
func (h *Handler) UpdateSocialAccount(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var body updateSocialAccountBody
	if err := h.decodeBody(w, r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	teamID, err := params.RequireString("teamId", params.First(body.TeamID, params.Query(r, "teamId")))
	if err != nil {
		writeError(w, r, err)
		return
	}

	channelID, setChannel := params.OptionalString(body.ChannelID)
	refresh, _ := params.OptionalFlag(body.RefreshChannels)
	if !setChannel && !refresh {
		writeError(w, r, params.BadRequest("Provide channelId or set refreshChannels to true to update the social account"))
		return
	}

	account, err := h.findSocialAccount(r.Context(), teamID, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	// Both capability checks run before any upstream write.
	if setChannel && !models.ChannelSelectablePlatforms.Contains(account.Type) {
		writeError(w, r, params.BadRequestf("%s accounts do not support channel selection", account.Type))
		return
	}
	if refresh && !models.RefreshablePlatforms.Contains(account.Type) {
		writeError(w, r, params.BadRequestf("%s accounts do not support refreshing channels", account.Type))
		return
	}

	var resp updateSocialAccountResponse

	if setChannel {
		req := &upstream.SetChannelRequest{TeamID: teamID, ChannelID: channelID, Type: account.Type}
		if err := validatePayload(req); err != nil {
			writeError(w, r, err)
			return
		}
		if resp.SetChannel, err = h.client.SetChannel(r.Context(), req); err != nil {
			writeError(w, r, err)
			return
		}
	}

	if refresh {
		req := &upstream.RefreshChannelsRequest{TeamID: teamID, Type: account.Type}
		if err := validatePayload(req); err != nil {
			writeError(w, r, err)
			return
		}
		if resp.RefreshChannels, err = h.client.RefreshChannels(r.Context(), req); err != nil {
			writeError(w, r, err)
			return
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// DeleteSocialAccount disconnects an account, using its type as recorded on
// the team.
//
// @Summary Disconnect social account
// @Tags Social Account
// @Param id path string true "Social account ID"
// @Param teamId query string true "Team ID"
// @Success 200 {object} object
// @Failure 404 {object} ErrorBody
// @Router /api/v1/social-account/{id} [delete]
func (h *Handler) DeleteSocialAccount(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var body teamIDBody
	if err := h.decodeBody(w, r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	teamID, err := params.RequireString("teamId", params.First(body.TeamID, params.Query(r, "teamId")))
	if err != nil {
		writeError(w, r, err)
		return
	}

	account, err := h.findSocialAccount(r.Context(), teamID, id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	req := &upstream.DisconnectRequest{TeamID: teamID, Type: account.Type}
	if err := validatePayload(req); err != nil {
		writeError(w, r, err)
		return
	}

	raw, err := h.client.DisconnectSocialAccount(r.Context(), req)
	respond(w, r, http.StatusOK, raw, err)
}
