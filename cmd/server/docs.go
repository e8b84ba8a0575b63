// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

// Package main provides the bundlerelay HTTP server
//
// @title bundlerelay API
// @version 1.0
// @description Relay in front of the bundle.social API. Query strings and JSON
// @description bodies are normalized before they are forwarded.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "code": "BAD_REQUEST",
// @description   "message": "teamId is required",
// @description   "request_id": "4f6c0a3e-...",
// @description   "details": {}
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/bundlerelay/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:3000
// @BasePath /
// @schemes http https
//
// @tag.name Core
// @tag.description Health, organization and misc lookups
//
// @tag.name Teams
// @tag.description Team management
//
// @tag.name Posts
// @tag.description Post scheduling and the Instagram shortcuts
//
// @tag.name Analytics
// @tag.description Team, social account and post analytics
//
// @tag.name Realtime
// @tag.description Webhook intake and the WebSocket event stream
package main
