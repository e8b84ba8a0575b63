// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package api

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"

	"github.com/gabriel-vasile/mimetype"

	"github.com/tomtom215/bundlerelay/internal/logging"
	"github.com/tomtom215/bundlerelay/internal/models"
	"github.com/tomtom215/bundlerelay/internal/params"
	"github.com/tomtom215/bundlerelay/internal/upstream"
)

// multipartMemory is how much of a multipart form is held in memory before
// file parts spill to temporary files.
const multipartMemory = 32 << 20

type initUploadBody struct {
	TeamID   any `json:"teamId"`
	FileName any `json:"fileName"`
	MimeType any `json:"mimeType"`
}

type finalizeUploadBody struct {
	TeamID any `json:"teamId"`
	Path   any `json:"path"`
}

// ListUploads lists uploads, optionally filtered by team, status and type.
// Unknown filter values are dropped.
//
// @Summary List uploads
// @Tags Upload
// @Produce json
// @Param teamId query string false "Team ID"
// @Param status query string false "USED or UNUSED"
// @Param type query string false "image, video or document"
// @Success 200 {object} object
// @Router /api/v1/upload [get]
func (h *Handler) ListUploads(w http.ResponseWriter, r *http.Request) {
	teamID, _ := params.OptionalString(params.Query(r, "teamId"))
	status, _ := params.EnumMember(params.Query(r, "status"), models.UploadStatuses)
	uploadType, _ := params.EnumMember(params.Query(r, "type"), models.UploadTypes)

	raw, err := h.client.ListUploads(r.Context(), upstream.ListUploadsParams{
		TeamID: teamID,
		Status: status,
		Type:   uploadType,
	})
	respond(w, r, http.StatusOK, raw, err)
}

// GetUpload returns one upload.
//
// @Summary Get upload
// @Tags Upload
// @Produce json
// @Param id path string true "Upload ID"
// @Success 200 {object} object
// @Router /api/v1/upload/{id} [get]
func (h *Handler) GetUpload(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	raw, err := h.client.GetUpload(r.Context(), id)
	respond(w, r, http.StatusOK, raw, err)
}

// CreateUpload streams a multipart file to bundle.social.
//
// @Summary Upload a file
// @Tags Upload
// @Accept multipart/form-data
// @Produce json
// @Param teamId formData string true "Team ID"
// @Param file formData file true "Media file"
// @Success 201 {object} object
// @Failure 400 {object} ErrorBody
// @Failure 413 {object} ErrorBody
// @Router /api/v1/upload/create [post]
func (h *Handler) CreateUpload(w http.ResponseWriter, r *http.Request) {
	limit := h.config.Uploads.MaxFileSize
	if limit > 0 {
		// Leave room for the form framing around the file.
		r.Body = http.MaxBytesReader(w, r.Body, limit+multipartMemory)
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		writeError(w, r, uploadParseError(err))
		return
	}
	if r.MultipartForm != nil {
		defer func() {
			if err := r.MultipartForm.RemoveAll(); err != nil {
				logging.Ctx(r.Context()).Warn().Err(err).Msg("Failed to remove multipart temp files")
			}
		}()
	}

	teamID, err := params.RequireString("teamId", params.Form(r, "teamId"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, r, params.BadRequest("file is required"))
		return
	}
	defer func() { _ = file.Close() }()

	if limit > 0 && header.Size > limit {
		writeError(w, r, newHTTPError(http.StatusRequestEntityTooLarge,
			fmt.Sprintf("file exceeds %d bytes", limit)))
		return
	}

	contentType, err := partContentType(header, file)
	if err != nil {
		writeError(w, r, err)
		return
	}

	req := &upstream.UploadFile{
		TeamID:      teamID,
		FileName:    header.Filename,
		ContentType: contentType,
		Body:        file,
	}
	if err := validatePayload(req); err != nil {
		writeError(w, r, err)
		return
	}

	raw, err := h.client.CreateUpload(r.Context(), req)
	respond(w, r, http.StatusCreated, raw, err)
}

func uploadParseError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return newHTTPError(http.StatusRequestEntityTooLarge, "upload exceeds the maximum file size")
	}
	return params.BadRequestf("invalid multipart form: %v", err)
}

// partContentType returns the MIME type declared on the file part. When the
// client declared none, or only the generic octet-stream, the content is
// sniffed and the file rewound.
func partContentType(header *multipart.FileHeader, file multipart.File) (string, error) {
	declared := header.Header.Get("Content-Type")
	if mediaType, _, err := mime.ParseMediaType(declared); err == nil && mediaType != "application/octet-stream" {
		return mediaType, nil
	}

	detected, err := mimetype.DetectReader(file)
	if err != nil {
		return "", fmt.Errorf("sniff upload content type: %w", err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind upload: %w", err)
	}

	mediaType, _, err := mime.ParseMediaType(detected.String())
	if err != nil {
		return "application/octet-stream", nil
	}
	return mediaType, nil
}

// InitLargeUpload starts a chunked upload.
//
// @Summary Start a large upload
// @Tags Upload
// @Accept json
// @Produce json
// @Success 201 {object} object
// @Failure 400 {object} ErrorBody
// @Router /api/v1/upload/init [post]
func (h *Handler) InitLargeUpload(w http.ResponseWriter, r *http.Request) {
	var body initUploadBody
	if err := h.decodeBody(w, r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	fileName, err := params.RequireString("fileName", body.FileName)
	if err != nil {
		writeError(w, r, err)
		return
	}
	mimeType, err := params.RequireEnum("mimeType", body.MimeType, models.UploadMimeTypes)
	if err != nil {
		writeError(w, r, err)
		return
	}

	req := &upstream.InitUploadRequest{
		TeamID:   stringOr(body.TeamID, ""),
		FileName: fileName,
		MimeType: mimeType,
	}
	if err := validatePayload(req); err != nil {
		writeError(w, r, err)
		return
	}

	raw, err := h.client.InitLargeUpload(r.Context(), req)
	respond(w, r, http.StatusCreated, raw, err)
}

// FinalizeLargeUpload completes a chunked upload.
//
// @Summary Finalize a large upload
// @Tags Upload
// @Accept json
// @Produce json
// @Success 200 {object} object
// @Failure 400 {object} ErrorBody
// @Router /api/v1/upload/finalize [post]
func (h *Handler) FinalizeLargeUpload(w http.ResponseWriter, r *http.Request) {
	var body finalizeUploadBody
	if err := h.decodeBody(w, r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	path, err := params.RequireString("path", body.Path)
	if err != nil {
		writeError(w, r, err)
		return
	}

	req := &upstream.FinalizeUploadRequest{
		TeamID: stringOr(body.TeamID, ""),
		Path:   path,
	}
	if err := validatePayload(req); err != nil {
		writeError(w, r, err)
		return
	}

	raw, err := h.client.FinalizeLargeUpload(r.Context(), req)
	respond(w, r, http.StatusOK, raw, err)
}
