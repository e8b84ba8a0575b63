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

// platformFilter normalizes a platforms filter. An empty or fully
// unrecognized list means no filter.
func platformFilter(v any, e *params.Enum) []string {
	platforms, ok := params.EnumSet(v, e)
	if !ok || len(platforms) == 0 {
		return nil
	}
	return platforms
}

// listPostsParams normalizes the GET /post query string.
func listPostsParams(r *http.Request) (upstream.ListPostsParams, error) {
	teamID, err := params.RequireString("teamId", params.Query(r, "teamId"))
	if err != nil {
		return upstream.ListPostsParams{}, err
	}

	q, _ := params.OptionalString(params.Query(r, "q"))
	order, _ := params.EnumMember(params.Query(r, "order"), models.SortOrders)
	orderBy, _ := params.EnumMember(params.Query(r, "orderBy"), models.PostOrderFields)
	status, _ := params.EnumMember(params.Query(r, "status"), models.PostStatuses)

	return upstream.ListPostsParams{
		TeamID:    teamID,
		Limit:     optionalNumber(params.Query(r, "limit")),
		Offset:    optionalNumber(params.Query(r, "offset")),
		Q:         q,
		Order:     order,
		OrderBy:   orderBy,
		Status:    status,
		Platforms: platformFilter(params.Query(r, "platforms"), models.Platforms),
	}, nil
}

// ListPosts lists a team's posts.
//
// @Summary List posts
// @Tags Post
// @Produce json
// @Param teamId query string true "Team ID"
// @Param limit query number false "Page size"
// @Param offset query number false "Page offset"
// @Param q query string false "Search text"
// @Param order query string false "ASC or DESC"
// @Param orderBy query string false "Sort field"
// @Param status query string false "Post status"
// @Param platforms query string false "Comma-separated platforms"
// @Success 200 {object} object
// @Failure 400 {object} ErrorBody
// @Router /api/v1/post [get]
func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	p, err := listPostsParams(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	raw, err := h.client.ListPosts(r.Context(), p)
	respond(w, r, http.StatusOK, raw, err)
}

// CreatePost forwards a post document to bundle.social.
//
// @Summary Create post
// @Tags Post
// @Accept json
// @Produce json
// @Success 201 {object} object
// @Failure 400 {object} ErrorBody
// @Router /api/v1/post [post]
func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	body, err := h.readObject(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	raw, err := h.client.CreatePost(r.Context(), body)
	respond(w, r, http.StatusCreated, raw, err)
}

// GetPost returns one post.
//
// @Summary Get post
// @Tags Post
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} object
// @Router /api/v1/post/{id} [get]
func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	h.getPost(w, r, "id")
}

func (h *Handler) getPost(w http.ResponseWriter, r *http.Request, key string) {
	id, err := pathParam(r, key)
	if err != nil {
		writeError(w, r, err)
		return
	}

	post, err := h.client.GetPost(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// UpdatePost forwards a partial post document.
//
// @Summary Update post
// @Tags Post
// @Accept json
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} object
// @Router /api/v1/post/{id} [patch]
func (h *Handler) UpdatePost(w http.ResponseWriter, r *http.Request) {
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

	raw, err := h.client.UpdatePost(r.Context(), id, body)
	respond(w, r, http.StatusOK, raw, err)
}

// DeletePost deletes a post.
//
// @Summary Delete post
// @Tags Post
// @Param id path string true "Post ID"
// @Success 200 {object} object
// @Router /api/v1/post/{id} [delete]
func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	raw, err := h.client.DeletePost(r.Context(), id)
	respond(w, r, http.StatusOK, raw, err)
}

// RetryPost retries a failed post.
//
// @Summary Retry post
// @Tags Post
// @Param id path string true "Post ID"
// @Success 200 {object} object
// @Router /api/v1/post/{id}/retry [post]
func (h *Handler) RetryPost(w http.ResponseWriter, r *http.Request) {
	h.retryPost(w, r, "id")
}

func (h *Handler) retryPost(w http.ResponseWriter, r *http.Request, key string) {
	id, err := pathParam(r, key)
	if err != nil {
		writeError(w, r, err)
		return
	}

	raw, err := h.client.RetryPost(r.Context(), id)
	respond(w, r, http.StatusOK, raw, err)
}
