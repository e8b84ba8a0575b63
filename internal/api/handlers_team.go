// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package api

import (
	"net/http"

	"github.com/tomtom215/bundlerelay/internal/models"
	"github.com/tomtom215/bundlerelay/internal/params"
	"github.com/tomtom215/bundlerelay/internal/upstream"
)

type createTeamBody struct {
	Name       any `json:"name"`
	Tier       any `json:"tier"`
	AvatarURL  any `json:"avatarUrl"`
	CopyTeamID any `json:"copyTeamId"`
}

type updateTeamBody struct {
	Name      any `json:"name"`
	AvatarURL any `json:"avatarUrl"`
}

// ListTeams lists the organization's teams.
//
// @Summary List teams
// @Tags Team
// @Produce json
// @Param limit query number false "Page size"
// @Param offset query number false "Page offset"
// @Success 200 {object} object
// @Router /api/v1/team [get]
func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	raw, err := h.client.ListTeams(r.Context(), upstream.ListTeamsParams{
		Limit:  optionalNumber(params.Query(r, "limit")),
		Offset: optionalNumber(params.Query(r, "offset")),
	})
	respond(w, r, http.StatusOK, raw, err)
}

// CreateTeam creates a team. An unknown tier falls back to the configured
// default tier.
//
// @Summary Create team
// @Tags Team
// @Accept json
// @Produce json
// @Success 201 {object} object
// @Failure 400 {object} ErrorBody
// @Router /api/v1/team [post]
func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var body createTeamBody
	if err := h.decodeBody(w, r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	name, err := params.RequireString("name", body.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}

	req := &upstream.CreateTeamRequest{
		Name:       name,
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

// teamTier resolves a requested tier against the configured default.
func (h *Handler) teamTier(v any) string {
	if tier, ok := params.EnumMember(v, models.TeamTiers); ok {
		return tier
	}
	return h.config.Defaults.TeamTier
}

// GetTeam returns one team with its social accounts.
//
// @Summary Get team
// @Tags Team
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} object
// @Router /api/v1/team/{id} [get]
func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	team, err := h.client.GetTeam(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, team)
}

// UpdateTeam renames a team or changes its avatar.
//
// @Summary Update team
// @Tags Team
// @Accept json
// @Produce json
// @Param id path string true "Team ID"
// @Success 200 {object} object
// @Failure 400 {object} ErrorBody
// @Router /api/v1/team/{id} [patch]
func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var body updateTeamBody
	if err := h.decodeBody(w, r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	req := &upstream.UpdateTeamRequest{
		Name:      stringOr(body.Name, ""),
		AvatarURL: stringOr(body.AvatarURL, ""),
	}
	if req.Name == "" && req.AvatarURL == "" {
		writeError(w, r, params.BadRequest("Provide name or avatarUrl to update the team"))
		return
	}
	if err := validatePayload(req); err != nil {
		writeError(w, r, err)
		return
	}

	raw, err := h.client.UpdateTeam(r.Context(), id, req)
	respond(w, r, http.StatusOK, raw, err)
}

// DeleteTeam deletes a team.
//
// @Summary Delete team
// @Tags Team
// @Param id path string true "Team ID"
// @Success 200 {object} object
// @Router /api/v1/team/{id} [delete]
func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	raw, err := h.client.DeleteTeam(r.Context(), id)
	respond(w, r, http.StatusOK, raw, err)
}
