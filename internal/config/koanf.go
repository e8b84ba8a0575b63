// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/bundlerelay/internal/params"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/bundlerelay/config.yaml",
	"/etc/bundlerelay/config.yml",
}

// DotEnvFiles are loaded, when present, before environment variables are read.
// Variables already set in the process environment win.
var DotEnvFiles = []string{".env.local", ".env"}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            3000,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",

			SlowRequestThreshold: 5 * time.Second,
		},
		Upstream: UpstreamConfig{
			BaseURL:           "https://api.bundle.social/api/v1",
			APIKey:            "",
			Timeout:           30 * time.Second,
			RequestsPerSecond: 10,
			Burst:             20,
			CircuitBreaker: CircuitBreakerConfig{
				Enabled:      true,
				MaxRequests:  3,
				Interval:     time.Minute,
				Timeout:      2 * time.Minute,
				MinRequests:  10,
				FailureRatio: 0.6,
			},
		},
		Webhook: WebhookConfig{
			Secret:       "",
			MaxBodyBytes: 2 << 20, // 2MB

			DedupWindow:   10 * time.Minute,
			DedupCapacity: 10000,
		},
		Defaults: DefaultsConfig{
			RedirectURL: "http://localhost:3000/instagram/callback",
			TeamName:    "Instagram Demo Team",
			TeamTier:    "FREE",
			Post: PostDefaults{
				Type:   "POST",
				Status: "SCHEDULED",
			},
		},
		Uploads: UploadsConfig{
			MaxFileSize:  1 << 30, // 1GB
			MaxJSONBytes: 2 << 20, // 2MB
		},
		Security: SecurityConfig{
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Load loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in sensible defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables (after .env files): Override any setting
//
// The returned Config has its enumerated defaults canonicalized and has
// passed Validate.
func Load() (*Config, error) {
	if err := loadDotEnv(DotEnvFiles...); err != nil {
		return nil, err
	}

	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file (optional)
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	if err := k.Load(env.ProviderWithValue("", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadDotEnv loads the given .env files that exist. godotenv.Load never
// overrides variables that are already set.
func loadDotEnv(files ...string) error {
	for _, name := range files {
		if _, err := os.Stat(name); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to stat %s: %w", name, err)
		}
		if err := godotenv.Load(name); err != nil {
			return fmt.Errorf("failed to load %s: %w", name, err)
		}
	}
	return nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// This is necessary because env vars come in as strings, but the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps environment variable names (lower case) to koanf paths.
// Variables not listed here are ignored.
var envMappings = map[string]string{
	// Server
	"port":                   "server.port",
	"http_port":              "server.port",
	"http_host":              "server.host",
	"http_timeout":           "server.timeout",
	"http_shutdown_timeout":  "server.shutdown_timeout",
	"environment":            "server.environment",
	"slow_request_threshold": "server.slow_request_threshold",

	// bundle.social API
	"bundlesocial_api_key":    "upstream.api_key",
	"bundlesocial_api_url":    "upstream.base_url",
	"bundlesocial_timeout":    "upstream.timeout",
	"bundlesocial_rate_limit": "upstream.requests_per_second",
	"bundlesocial_rate_burst": "upstream.burst",

	"bundlesocial_circuit_breaker_enabled":       "upstream.circuit_breaker.enabled",
	"bundlesocial_circuit_breaker_max_requests":  "upstream.circuit_breaker.max_requests",
	"bundlesocial_circuit_breaker_interval":      "upstream.circuit_breaker.interval",
	"bundlesocial_circuit_breaker_timeout":       "upstream.circuit_breaker.timeout",
	"bundlesocial_circuit_breaker_min_requests":  "upstream.circuit_breaker.min_requests",
	"bundlesocial_circuit_breaker_failure_ratio": "upstream.circuit_breaker.failure_ratio",

	// Webhook
	"bundlesocial_webhook_secret": "webhook.secret",
	"webhook_max_body_bytes":      "webhook.max_body_bytes",
	"webhook_dedup_window":        "webhook.dedup_window",
	"webhook_dedup_capacity":      "webhook.dedup_capacity",

	// Request defaults
	"bundlesocial_redirect_url":               "defaults.redirect_url",
	"bundlesocial_default_team_name":          "defaults.team_name",
	"bundlesocial_default_team_tier":          "defaults.team_tier",
	"bundlesocial_default_portal_language":    "defaults.portal.language",
	"bundlesocial_portal_user_name":           "defaults.portal.user_name",
	"bundlesocial_portal_logo_url":            "defaults.portal.logo_url",
	"bundlesocial_portal_user_logo_url":       "defaults.portal.user_logo_url",
	"bundlesocial_default_post_type":          "defaults.post.type",
	"bundlesocial_default_post_status":        "defaults.post.status",
	"bundlesocial_default_share_to_feed":      "defaults.post.share_to_feed",
	"bundlesocial_default_post_delay_minutes": "defaults.post.schedule_offset_minutes",

	// Uploads
	"upload_max_file_size": "uploads.max_file_size",
	"max_json_body_bytes":  "uploads.max_json_bytes",

	// Security
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransform maps an environment variable to its koanf path and value.
// Returning an empty key drops the variable, which leaves the lower layer's
// value in place. Empty values are dropped so that `FOO=` in a .env file
// does not blank out a default.
func envTransform(key, value string) (string, any) {
	path, ok := envMappings[strings.ToLower(key)]
	if !ok || strings.TrimSpace(value) == "" {
		return "", nil
	}

	switch path {
	case "defaults.post.share_to_feed":
		b, ok := params.OptionalFlag(value)
		if !ok {
			return "", nil
		}
		return path, b
	case "defaults.post.schedule_offset_minutes":
		f, ok := params.OptionalNumber(value)
		if !ok {
			return "", nil
		}
		return path, int(f)
	}

	return path, value
}
