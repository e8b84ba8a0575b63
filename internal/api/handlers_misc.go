// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package api

import (
	"net/http"
	"os"
	"time"

	"github.com/tomtom215/bundlerelay/internal/models"
)

// commonTimezones is served when the host has no timezone database listing.
var commonTimezones = []string{
	"UTC",
	"Europe/London",
	"Europe/Paris",
	"Europe/Rome",
	"Europe/Warsaw",
	"Asia/Tehran",
	"Asia/Dubai",
	"Asia/Kolkata",
	"Asia/Tokyo",
	"Australia/Sydney",
	"America/New_York",
	"America/Los_Angeles",
	"America/Sao_Paulo",
}

type timezonesResponse struct {
	Count int      `json:"count"`
	Items []string `json:"items"`
}

type platformsResponse struct {
	SocialAccountTypes []string `json:"socialAccountTypes"`
	AnalyticsPlatforms []string `json:"analyticsPlatforms"`
	CommentPlatforms   []string `json:"commentPlatforms"`
}

type serverResponse struct {
	Now           string  `json:"now"`
	UptimeSeconds float64 `json:"uptimeSeconds"`
	PID           int     `json:"pid"`
}

// Timezones lists timezone names usable for scheduling.
//
// @Summary List timezones
// @Tags Misc
// @Produce json
// @Success 200 {object} timezonesResponse
// @Router /api/v1/misc/timezones [get]
func (h *Handler) Timezones(w http.ResponseWriter, r *http.Request) {
	items := make([]string, 0, len(commonTimezones))
	for _, name := range commonTimezones {
		if _, err := time.LoadLocation(name); err == nil {
			items = append(items, name)
		}
	}
	if len(items) == 0 {
		items = append(items, commonTimezones...)
	}
	writeJSON(w, http.StatusOK, timezonesResponse{Count: len(items), Items: items})
}

// Platforms lists the platform enumerations the relay accepts.
//
// @Summary List platforms
// @Tags Misc
// @Produce json
// @Success 200 {object} platformsResponse
// @Router /api/v1/misc/platforms [get]
func (h *Handler) Platforms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, platformsResponse{
		SocialAccountTypes: models.SocialAccountTypes.Values(),
		AnalyticsPlatforms: models.AnalyticsPlatforms.Values(),
		CommentPlatforms:   models.CommentPlatforms.Values(),
	})
}

// Server reports the relay's clock, uptime and process ID.
//
// @Summary Server info
// @Tags Misc
// @Produce json
// @Success 200 {object} serverResponse
// @Router /api/v1/misc/server [get]
func (h *Handler) Server(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, serverResponse{
		Now:           time.Now().UTC().Format(isoMillis),
		UptimeSeconds: time.Since(h.startTime).Seconds(),
		PID:           os.Getpid(),
	})
}
