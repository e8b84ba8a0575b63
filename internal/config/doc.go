// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

/*
Package config provides centralized configuration management for bundlerelay.

Load builds a single Config from four layers (later layers win):

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file: CONFIG_PATH, ./config.yaml or /etc/bundlerelay/config.yaml
 3. .env.local and .env, loaded with godotenv without overriding the process environment
 4. Environment variables, mapped explicitly through envMappings

After unmarshaling, enumerated defaults are canonicalized (tier, post type,
post status, portal language) and the result is validated. The returned
*Config is treated as immutable by every consumer.

# Environment Variables

bundle.social:
  - BUNDLESOCIAL_API_KEY: API key (required)
  - BUNDLESOCIAL_WEBHOOK_SECRET: webhook signing secret (required)
  - BUNDLESOCIAL_API_URL: API base URL (default: https://api.bundle.social/api/v1)
  - BUNDLESOCIAL_TIMEOUT: per-request timeout (default: 30s)
  - BUNDLESOCIAL_RATE_LIMIT / BUNDLESOCIAL_RATE_BURST: outbound rate limit (default: 10/s, burst 20)

Request defaults:
  - BUNDLESOCIAL_REDIRECT_URL (default: http://localhost:3000/instagram/callback)
  - BUNDLESOCIAL_DEFAULT_TEAM_NAME (default: Instagram Demo Team)
  - BUNDLESOCIAL_DEFAULT_TEAM_TIER: FREE, PRO or BUSINESS (default: FREE)
  - BUNDLESOCIAL_DEFAULT_PORTAL_LANGUAGE: en, pl, fr, hi, sv, de, es, it, nl, pt, ru, tr, zh
  - BUNDLESOCIAL_PORTAL_USER_NAME, BUNDLESOCIAL_PORTAL_LOGO_URL, BUNDLESOCIAL_PORTAL_USER_LOGO_URL
  - BUNDLESOCIAL_DEFAULT_POST_TYPE: POST, REEL or STORY (default: POST)
  - BUNDLESOCIAL_DEFAULT_POST_STATUS: SCHEDULED or DRAFT (default: SCHEDULED)
  - BUNDLESOCIAL_DEFAULT_SHARE_TO_FEED: true/1/yes/y/on or false/0/no/n/off (default: false)
  - BUNDLESOCIAL_DEFAULT_POST_DELAY_MINUTES (default: 0)

HTTP server:
  - PORT or HTTP_PORT (default: 3000), HTTP_HOST (default: 0.0.0.0)
  - HTTP_TIMEOUT (default: 30s), ENVIRONMENT (default: development)
  - SLOW_REQUEST_THRESHOLD: access log warn threshold (default: 5s, 0 disables)
  - UPLOAD_MAX_FILE_SIZE (default: 1GB), MAX_JSON_BODY_BYTES (default: 2MB)
  - CORS_ORIGINS (comma-separated), RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Logging:
  - LOG_LEVEL (default: info), LOG_FORMAT json|console (default: json), LOG_CALLER
*/
package config
