// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/tomtom215/bundlerelay/internal/models"
)

// normalize canonicalizes enumerated defaults. Unknown tiers, post types and
// statuses fall back to their built-in defaults; an unknown portal language
// is cleared so the portal picks one.
func (c *Config) normalize() {
	c.Defaults.TeamTier = lookupOr(models.TeamTiers.Lookup, c.Defaults.TeamTier, models.TeamTierFree)
	c.Defaults.Post.Type = lookupOr(models.InstagramPostTypes.Lookup, c.Defaults.Post.Type, models.InstagramPost)
	c.Defaults.Post.Status = lookupOr(models.DefaultPostStatuses.Lookup, c.Defaults.Post.Status, models.PostStatusScheduled)
	c.Defaults.Portal.Language = lookupOr(models.PortalLanguages.Lookup, c.Defaults.Portal.Language, "")

	c.Defaults.TeamName = strings.TrimSpace(c.Defaults.TeamName)
	c.Defaults.RedirectURL = strings.TrimSpace(c.Defaults.RedirectURL)
	c.Upstream.BaseURL = strings.TrimRight(strings.TrimSpace(c.Upstream.BaseURL), "/")
	c.Logging.Level = strings.ToLower(c.Logging.Level)
	c.Logging.Format = strings.ToLower(c.Logging.Format)
}

func lookupOr(lookup func(string) (string, bool), value, fallback string) string {
	if m, ok := lookup(value); ok {
		return m
	}
	return fallback
}

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateUpstream(); err != nil {
		return err
	}

	if err := c.validateWebhook(); err != nil {
		return err
	}

	if err := c.validateDefaults(); err != nil {
		return err
	}

	if err := c.validateUploads(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %v", c.Server.Timeout)
	}
	if c.Server.SlowRequestThreshold < 0 {
		return fmt.Errorf("SLOW_REQUEST_THRESHOLD must not be negative, got %v", c.Server.SlowRequestThreshold)
	}
	switch c.Server.Environment {
	case "development", "staging", "production":
	default:
		return fmt.Errorf("ENVIRONMENT must be development, staging or production, got %q", c.Server.Environment)
	}
	return nil
}

func (c *Config) validateUpstream() error {
	if c.Upstream.APIKey == "" {
		return fmt.Errorf("BUNDLESOCIAL_API_KEY is required")
	}
	if err := validateHTTPURL("BUNDLESOCIAL_API_URL", c.Upstream.BaseURL); err != nil {
		return err
	}
	if c.Upstream.Timeout <= 0 {
		return fmt.Errorf("BUNDLESOCIAL_TIMEOUT must be positive, got %v", c.Upstream.Timeout)
	}
	if c.Upstream.RequestsPerSecond < 0 {
		return fmt.Errorf("BUNDLESOCIAL_RATE_LIMIT must not be negative, got %v", c.Upstream.RequestsPerSecond)
	}
	if c.Upstream.RequestsPerSecond > 0 && c.Upstream.Burst < 1 {
		return fmt.Errorf("BUNDLESOCIAL_RATE_BURST must be at least 1 when rate limiting is enabled")
	}

	cb := c.Upstream.CircuitBreaker
	if cb.Enabled {
		if cb.FailureRatio <= 0 || cb.FailureRatio > 1 {
			return fmt.Errorf("circuit breaker failure ratio must be in (0, 1], got %v", cb.FailureRatio)
		}
		if cb.MaxRequests == 0 {
			return fmt.Errorf("circuit breaker max requests must be at least 1")
		}
		if cb.Timeout <= 0 {
			return fmt.Errorf("circuit breaker timeout must be positive, got %v", cb.Timeout)
		}
	}
	return nil
}

func (c *Config) validateWebhook() error {
	if c.Webhook.Secret == "" {
		return fmt.Errorf("BUNDLESOCIAL_WEBHOOK_SECRET is required")
	}
	if c.Webhook.MaxBodyBytes <= 0 {
		return fmt.Errorf("WEBHOOK_MAX_BODY_BYTES must be positive, got %d", c.Webhook.MaxBodyBytes)
	}
	if c.Webhook.DedupWindow < 0 {
		return fmt.Errorf("WEBHOOK_DEDUP_WINDOW must not be negative, got %s", c.Webhook.DedupWindow)
	}
	if c.Webhook.DedupCapacity < 0 {
		return fmt.Errorf("WEBHOOK_DEDUP_CAPACITY must not be negative, got %d", c.Webhook.DedupCapacity)
	}
	return nil
}

func (c *Config) validateDefaults() error {
	if c.Defaults.RedirectURL != "" {
		if err := validateHTTPURL("BUNDLESOCIAL_REDIRECT_URL", c.Defaults.RedirectURL); err != nil {
			return err
		}
	}
	if c.Defaults.TeamName == "" {
		return fmt.Errorf("BUNDLESOCIAL_DEFAULT_TEAM_NAME must not be blank")
	}
	if c.Defaults.Post.ScheduleOffsetMinutes < 0 {
		return fmt.Errorf("BUNDLESOCIAL_DEFAULT_POST_DELAY_MINUTES must not be negative, got %d",
			c.Defaults.Post.ScheduleOffsetMinutes)
	}
	return nil
}

func (c *Config) validateUploads() error {
	if c.Uploads.MaxFileSize <= 0 {
		return fmt.Errorf("UPLOAD_MAX_FILE_SIZE must be positive, got %d", c.Uploads.MaxFileSize)
	}
	if c.Uploads.MaxJSONBytes <= 0 {
		return fmt.Errorf("MAX_JSON_BODY_BYTES must be positive, got %d", c.Uploads.MaxJSONBytes)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitReqs < 1 {
			return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1, got %d", c.Security.RateLimitReqs)
		}
		if c.Security.RateLimitWindow <= 0 {
			return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %v", c.Security.RateLimitWindow)
		}
	}
	if c.IsProduction() {
		for _, origin := range c.Security.CORSOrigins {
			if origin == "*" {
				return fmt.Errorf("CORS_ORIGINS must not contain '*' in production")
			}
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error, got %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

func validateHTTPURL(name, raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s is not a valid URL: %w", name, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must use http or https, got %q", name, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%s must include a host, got %q", name, raw)
	}
	return nil
}
