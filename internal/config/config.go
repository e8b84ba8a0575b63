// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file, .env files and environment variables.
//
// A Config is built once by Load and then shared by pointer. Nothing
// mutates it after Load returns, so handlers read defaults without locking.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: built-in values for every optional setting
//  2. Config File: optional YAML file (config.yaml or CONFIG_PATH)
//  3. .env files: loaded into the process environment without overriding it
//  4. Environment Variables: override any setting
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal("Failed to load config:", err)
//	}
//	client := upstream.NewHTTPClient(&cfg.Upstream)
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Upstream UpstreamConfig `koanf:"upstream"`
	Webhook  WebhookConfig  `koanf:"webhook"`
	Defaults DefaultsConfig `koanf:"defaults"`
	Uploads  UploadsConfig  `koanf:"uploads"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // development, staging, production

	// SlowRequestThreshold promotes access log lines to warn; 0 disables.
	SlowRequestThreshold time.Duration `koanf:"slow_request_threshold"`
}

// Addr returns the listen address.
func (s *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// UpstreamConfig holds the bundle.social API connection settings.
type UpstreamConfig struct {
	BaseURL string        `koanf:"base_url"`
	APIKey  string        `koanf:"api_key"`
	Timeout time.Duration `koanf:"timeout"`

	// RequestsPerSecond caps outbound calls; 0 disables the limiter.
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	Burst             int     `koanf:"burst"`

	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
}

// CircuitBreakerConfig tunes the breaker in front of the upstream client.
type CircuitBreakerConfig struct {
	Enabled      bool          `koanf:"enabled"`
	MaxRequests  uint32        `koanf:"max_requests"` // trial requests allowed while half-open
	Interval     time.Duration `koanf:"interval"`     // closed-state counter reset
	Timeout      time.Duration `koanf:"timeout"`      // open -> half-open delay
	MinRequests  uint32        `koanf:"min_requests"`
	FailureRatio float64       `koanf:"failure_ratio"`
}

// WebhookConfig holds webhook intake settings.
type WebhookConfig struct {
	Secret       string `koanf:"secret"`
	MaxBodyBytes int64  `koanf:"max_body_bytes"`

	// DedupWindow is how long a delivery is remembered for redelivery
	// detection; 0 disables it.
	DedupWindow   time.Duration `koanf:"dedup_window"`
	DedupCapacity int           `koanf:"dedup_capacity"`
}

// DefaultsConfig holds the values used when a request leaves a field out.
type DefaultsConfig struct {
	RedirectURL string         `koanf:"redirect_url"`
	TeamName    string         `koanf:"team_name"`
	TeamTier    string         `koanf:"team_tier"`
	Portal      PortalDefaults `koanf:"portal"`
	Post        PostDefaults   `koanf:"post"`
}

// PortalDefaults customize the hosted account-connection portal.
type PortalDefaults struct {
	Language    string `koanf:"language"` // empty means the portal decides
	UserName    string `koanf:"user_name"`
	LogoURL     string `koanf:"logo_url"`
	UserLogoURL string `koanf:"user_logo_url"`
}

// PostDefaults apply to the Instagram post shortcuts.
type PostDefaults struct {
	Type                  string `koanf:"type"`
	Status                string `koanf:"status"`
	ShareToFeed           bool   `koanf:"share_to_feed"`
	ScheduleOffsetMinutes int    `koanf:"schedule_offset_minutes"`
}

// ScheduleOffset returns the post delay as a duration.
func (p *PostDefaults) ScheduleOffset() time.Duration {
	return time.Duration(p.ScheduleOffsetMinutes) * time.Minute
}

// UploadsConfig bounds request bodies.
type UploadsConfig struct {
	MaxFileSize  int64 `koanf:"max_file_size"`
	MaxJSONBytes int64 `koanf:"max_json_bytes"`
}

// SecurityConfig holds inbound HTTP protections.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
