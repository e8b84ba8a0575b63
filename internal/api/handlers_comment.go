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

// ListComments lists a team's comments.
//
// @Summary List comments
// @Tags Comment
// @Produce json
// @Param teamId query string true "Team ID"
// @Param postId query string false "Post ID"
// @Param platforms query string false "Comma-separated platforms"
// @Success 200 {object} object
// @Failure 400 {object} ErrorBody
// @Router /api/v1/comment [get]
func (h *Handler) ListComments(w http.ResponseWriter, r *http.Request) {
	teamID, err := params.RequireString("teamId", params.Query(r, "teamId"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	postID, _ := params.OptionalString(params.Query(r, "postId"))
	q, _ := params.OptionalString(params.Query(r, "q"))
	order, _ := params.EnumMember(params.Query(r, "order"), models.SortOrders)
	orderBy, _ := params.EnumMember(params.Query(r, "orderBy"), models.CommentOrderFields)
	status, _ := params.EnumMember(params.Query(r, "status"), models.CommentStatuses)

	raw, err := h.client.ListComments(r.Context(), upstream.ListCommentsParams{
		TeamID:    teamID,
		PostID:    postID,
		Q:         q,
		Limit:     optionalNumber(params.Query(r, "limit")),
		Offset:    optionalNumber(params.Query(r, "offset")),
		Order:     order,
		OrderBy:   orderBy,
		Status:    status,
		Platforms: platformFilter(params.Query(r, "platforms"), models.CommentPlatforms),
	})
	respond(w, r, http.StatusOK, raw, err)
}

// CreateComment forwards a comment document.
//
// @Summary Create comment
// @Tags Comment
// @Accept json
// @Produce json
// @Success 201 {object} object
// @Router /api/v1/comment [post]
func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
	body, err := h.readObject(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	raw, err := h.client.CreateComment(r.Context(), body)
	respond(w, r, http.StatusCreated, raw, err)
}

// GetComment returns one comment.
//
// @Summary Get comment
// @Tags Comment
// @Produce json
// @Param id path string true "Comment ID"
// @Success 200 {object} object
// @Router /api/v1/comment/{id} [get]
func (h *Handler) GetComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	raw, err := h.client.GetComment(r.Context(), id)
	respond(w, r, http.StatusOK, raw, err)
}

// UpdateComment forwards a partial comment document.
//
// @Summary Update comment
// @Tags Comment
// @Accept json
// @Produce json
// @Param id path string true "Comment ID"
// @Success 200 {object} object
// @Router /api/v1/comment/{id} [patch]
func (h *Handler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	body, err := h.readObject(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	raw, err := h.client.UpdateComment(r.Context(), id, body)
	respond(w, r, http.StatusOK, raw, err)
}

// DeleteComment deletes a comment.
//
// @Summary Delete comment
// @Tags Comment
// @Param id path string true "Comment ID"
// @Success 200 {object} object
// @Router /api/v1/comment/{id} [delete]
func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	raw, err := h.client.DeleteComment(r.Context(), id)
	respond(w, r, http.StatusOK, raw, err)
}
