// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package config

import (
	"strings"
	"testing"
	"time"
)

// validConfig returns defaults with the required secrets filled in.
func validConfig() *Config {
	cfg := defaultConfig()
	cfg.Upstream.APIKey = "test-api-key"
	cfg.Webhook.Secret = "test-webhook-secret"
	cfg.normalize()
	return cfg
}

func TestValidate_Defaults(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("Validate() on defaults: %v", err)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "missing api key",
			mutate:  func(c *Config) { c.Upstream.APIKey = "" },
			wantErr: "BUNDLESOCIAL_API_KEY is required",
		},
		{
			name:    "missing webhook secret",
			mutate:  func(c *Config) { c.Webhook.Secret = "" },
			wantErr: "BUNDLESOCIAL_WEBHOOK_SECRET is required",
		},
		{
			name:    "negative dedup window",
			mutate:  func(c *Config) { c.Webhook.DedupWindow = -time.Second },
			wantErr: "WEBHOOK_DEDUP_WINDOW",
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: "server port",
		},
		{
			name:    "unknown environment",
			mutate:  func(c *Config) { c.Server.Environment = "prod" },
			wantErr: "ENVIRONMENT",
		},
		{
			name:    "relative base url",
			mutate:  func(c *Config) { c.Upstream.BaseURL = "/api/v1" },
			wantErr: "BUNDLESOCIAL_API_URL",
		},
		{
			name:    "ftp redirect url",
			mutate:  func(c *Config) { c.Defaults.RedirectURL = "ftp://example.com/cb" },
			wantErr: "BUNDLESOCIAL_REDIRECT_URL",
		},
		{
			name:    "negative rate limit",
			mutate:  func(c *Config) { c.Upstream.RequestsPerSecond = -1 },
			wantErr: "BUNDLESOCIAL_RATE_LIMIT",
		},
		{
			name:    "negative post delay",
			mutate:  func(c *Config) { c.Defaults.Post.ScheduleOffsetMinutes = -5 },
			wantErr: "BUNDLESOCIAL_DEFAULT_POST_DELAY_MINUTES",
		},
		{
			name:    "bad failure ratio",
			mutate:  func(c *Config) { c.Upstream.CircuitBreaker.FailureRatio = 1.5 },
			wantErr: "failure ratio",
		},
		{
			name:    "zero upload size",
			mutate:  func(c *Config) { c.Uploads.MaxFileSize = 0 },
			wantErr: "UPLOAD_MAX_FILE_SIZE",
		},
		{
			name: "wildcard cors in production",
			mutate: func(c *Config) {
				c.Server.Environment = "production"
				c.Security.CORSOrigins = []string{"https://app.example.com", "*"}
			},
			wantErr: "CORS_ORIGINS",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "LOG_LEVEL",
		},
		{
			name:    "bad log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "LOG_FORMAT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_RateLimitDisabledSkipsChecks(t *testing.T) {
	cfg := validConfig()
	cfg.Security.RateLimitDisabled = true
	cfg.Security.RateLimitReqs = 0
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil when rate limiting is disabled", err)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name       string
		tier       string
		postType   string
		postStatus string
		language   string
		want       [4]string
	}{
		{
			name: "canonicalizes casing",
			tier: "pro", postType: "reel", postStatus: "draft", language: "DE",
			want: [4]string{"PRO", "REEL", "DRAFT", "de"},
		},
		{
			name: "falls back on unknown values",
			tier: "ENTERPRISE", postType: "CAROUSEL", postStatus: "POSTED", language: "xx",
			want: [4]string{"FREE", "POST", "SCHEDULED", ""},
		},
		{
			name: "empty values",
			want: [4]string{"FREE", "POST", "SCHEDULED", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			cfg.Defaults.TeamTier = tt.tier
			cfg.Defaults.Post.Type = tt.postType
			cfg.Defaults.Post.Status = tt.postStatus
			cfg.Defaults.Portal.Language = tt.language
			cfg.normalize()

			got := [4]string{cfg.Defaults.TeamTier, cfg.Defaults.Post.Type, cfg.Defaults.Post.Status, cfg.Defaults.Portal.Language}
			if got != tt.want {
				t.Errorf("normalize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNormalize_TrimsBaseURL(t *testing.T) {
	cfg := defaultConfig()
	cfg.Upstream.BaseURL = " https://api.bundle.social/api/v1/ "
	cfg.normalize()
	if cfg.Upstream.BaseURL != "https://api.bundle.social/api/v1" {
		t.Errorf("BaseURL = %q", cfg.Upstream.BaseURL)
	}
}

func TestHelpers(t *testing.T) {
	cfg := validConfig()
	if got := cfg.Server.Addr(); got != "0.0.0.0:3000" {
		t.Errorf("Addr() = %q", got)
	}
	cfg.Defaults.Post.ScheduleOffsetMinutes = 15
	if got := cfg.Defaults.Post.ScheduleOffset(); got != 15*time.Minute {
		t.Errorf("ScheduleOffset() = %v", got)
	}
	if cfg.IsProduction() {
		t.Error("IsProduction() = true for development")
	}
}
