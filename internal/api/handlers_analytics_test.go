// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package api

import (
	"errors"
	"net/http"
	"sort"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/bundlerelay/internal/upstream"
)

// =====================================================
// Team analytics fan-out
// =====================================================

func TestTeamAnalytics_FansOutPerPlatform(t *testing.T) {
	s := newTestServer(t)
	s.mock.SetTeam(teamWithAccounts("T1",
		upstream.SocialAccount{ID: "A1", Type: "INSTAGRAM"},
		upstream.SocialAccount{ID: "A2", Type: "DISCORD"}, // no analytics
		upstream.SocialAccount{ID: "A3", Type: "TIKTOK"},
		upstream.SocialAccount{ID: "A4", Type: "INSTAGRAM"},
	))
	s.mock.SetAnalytics("INSTAGRAM", &upstream.SocialAccountAnalytics{
		SocialAccount: json.RawMessage(`{"id":"A1"}`),
		Items: []json.RawMessage{
			json.RawMessage(`{"likes":2,"views":10}`),
			json.RawMessage(`{"likes":3,"followers":7}`),
		},
	})

	rec := s.do(t, http.MethodGet, "/api/v1/analytics/team/T1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	resp := decodeBody[teamAnalyticsResponse](t, rec)
	if resp.TeamID != "T1" || len(resp.Analytics) != 2 {
		t.Fatalf("response = %+v", resp)
	}
	if resp.Analytics[0].PlatformType != "INSTAGRAM" || resp.Analytics[1].PlatformType != "TIKTOK" {
		t.Errorf("platform order = %s, %s", resp.Analytics[0].PlatformType, resp.Analytics[1].PlatformType)
	}
	totals := resp.Analytics[0].Totals
	if totals.Likes != 5 || totals.Views != 10 || totals.Followers != 7 {
		t.Errorf("totals = %+v", totals)
	}
	if len(resp.Analytics[0].Entries) != 2 || len(resp.Analytics[1].Entries) != 0 {
		t.Errorf("entries = %d, %d", len(resp.Analytics[0].Entries), len(resp.Analytics[1].Entries))
	}

	var queried []string
	for _, c := range s.mock.CallsTo(upstream.OpSocialAccountAnalytics) {
		queried = append(queried, c.Arg(0).(upstream.SocialAccountAnalyticsParams).PlatformType)
	}
	sort.Strings(queried)
	if len(queried) != 2 || queried[0] != "INSTAGRAM" || queried[1] != "TIKTOK" {
		t.Errorf("queried platforms = %v", queried)
	}
}

func TestTeamAnalytics_NoAnalyticsAccounts(t *testing.T) {
	s := newTestServer(t)
	s.mock.SetTeam(teamWithAccounts("T1", upstream.SocialAccount{ID: "A1", Type: "SLACK"}))

	rec := s.do(t, http.MethodGet, "/api/v1/analytics/team/T1", "")
	assertError(t, rec, http.StatusNotFound, ErrCodeNotFound, "Team does not have analytics-enabled social accounts")
	if n := len(s.mock.CallsTo(upstream.OpSocialAccountAnalytics)); n != 0 {
		t.Errorf("analytics called %d times", n)
	}
}

func TestTeamAnalytics_UpstreamFailure(t *testing.T) {
	s := newTestServer(t)
	s.mock.SetTeam(teamWithAccounts("T1", upstream.SocialAccount{ID: "A1", Type: "YOUTUBE"}))
	s.mock.SetError(upstream.OpSocialAccountAnalytics, &upstream.APIError{
		Operation: upstream.OpSocialAccountAnalytics,
		Status:    http.StatusTooManyRequests,
		Message:   "slow down",
		Body:      json.RawMessage(`{"message":"slow down"}`),
	})

	rec := s.do(t, http.MethodGet, "/api/v1/analytics/team/T1", "")
	assertError(t, rec, http.StatusTooManyRequests, ErrCodeUpstream, "slow down")
}

func TestForceTeamAnalytics(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/v1/analytics/team/T1/force-refresh", `{"platformType":"slack"}`)
	assertError(t, rec, http.StatusBadRequest, ErrCodeBadRequest, "")
	s.assertNoUpstreamCalls(t)

	rec = s.do(t, http.MethodPost, "/api/v1/analytics/team/T1/force-refresh", `{"platformType":"bluesky"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	req := s.onlyCall(t, upstream.OpForceSocialAccountAnalytics).Arg(0).(*upstream.ForceSocialAccountAnalyticsRequest)
	if req.TeamID != "T1" || req.PlatformType != "BLUESKY" {
		t.Errorf("request = %+v", req)
	}
}

// =====================================================
// Social account analytics
// =====================================================

func TestSocialAccountAnalytics_DefaultsToAccountType(t *testing.T) {
	s := newTestServer(t)
	s.mock.SetTeam(teamWithAccounts("T1", upstream.SocialAccount{ID: "A1", Type: "LINKEDIN"}))

	rec := s.do(t, http.MethodGet, "/api/v1/analytics/social-account/A1?teamId=T1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	p := s.onlyCall(t, upstream.OpSocialAccountAnalytics).Arg(0).(upstream.SocialAccountAnalyticsParams)
	if p.PlatformType != "LINKEDIN" || p.TeamID != "T1" {
		t.Errorf("params = %+v", p)
	}
}

func TestSocialAccountAnalytics_IgnoresPlatformQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"blank", "platformType=%20%20"},
		{"empty", "platformType="},
		{"other analytics platform", "platformType=youtube"},
		{"platform without analytics", "platformType=slack"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			s.mock.SetTeam(teamWithAccounts("T1", upstream.SocialAccount{ID: "A1", Type: "THREADS"}))

			rec := s.do(t, http.MethodGet, "/api/v1/analytics/social-account/A1?teamId=T1&"+tt.query, "")
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
			}
			p := s.onlyCall(t, upstream.OpSocialAccountAnalytics).Arg(0).(upstream.SocialAccountAnalyticsParams)
			if p.PlatformType != "THREADS" {
				t.Errorf("platform = %s, want the account type", p.PlatformType)
			}
		})
	}
}

func TestSocialAccountAnalytics_Errors(t *testing.T) {
	tests := []struct {
		name    string
		account upstream.SocialAccount
		target  string
		status  int
		code    string
		msg     string
	}{
		{"team required", upstream.SocialAccount{ID: "A1", Type: "TIKTOK"}, "/api/v1/analytics/social-account/A1", http.StatusBadRequest, ErrCodeBadRequest, "teamId is required"},
		{"account missing", upstream.SocialAccount{ID: "A1", Type: "TIKTOK"}, "/api/v1/analytics/social-account/A9?teamId=T1", http.StatusNotFound, ErrCodeNotFound, "No social account A9 found for team T1"},
		{"account type without analytics", upstream.SocialAccount{ID: "A1", Type: "DISCORD"}, "/api/v1/analytics/social-account/A1?teamId=T1", http.StatusBadRequest, ErrCodeBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			s.mock.SetTeam(teamWithAccounts("T1", tt.account))
			rec := s.do(t, http.MethodGet, tt.target, "")
			assertError(t, rec, tt.status, tt.code, tt.msg)
			if n := len(s.mock.CallsTo(upstream.OpSocialAccountAnalytics)); n != 0 {
				t.Errorf("analytics called %d times", n)
			}
		})
	}
}

// =====================================================
// Post analytics
// =====================================================

func TestPostAnalytics_DetectsPlatformsFromPost(t *testing.T) {
	s := newTestServer(t)
	s.mock.SetPost(&upstream.Post{ID: "P1", Data: map[string]json.RawMessage{
		"TIKTOK":    json.RawMessage(`{"text":"a"}`),
		"INSTAGRAM": json.RawMessage(`{"text":"b"}`),
		"YOUTUBE":   json.RawMessage(`null`),
		"DISCORD":   json.RawMessage(`{"text":"c"}`),
	}})
	s.mock.SetResponse(upstream.OpPostAnalytics, `{"items":[]}`)

	rec := s.do(t, http.MethodGet, "/api/v1/analytics/post/P1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	resp := decodeBody[postAnalyticsResponse](t, rec)
	if resp.PostID != "P1" || len(resp.Analytics) != 2 {
		t.Fatalf("response = %+v", resp)
	}
	for i, result := range resp.Analytics {
		if string(result) != `{"items":[]}` {
			t.Errorf("analytics[%d] = %s, want the raw upstream result", i, result)
		}
	}

	var queried []string
	for _, c := range s.mock.CallsTo(upstream.OpPostAnalytics) {
		queried = append(queried, c.Arg(0).(upstream.PostAnalyticsParams).PlatformType)
	}
	sort.Strings(queried)
	if len(queried) != 2 || queried[0] != "INSTAGRAM" || queried[1] != "TIKTOK" {
		t.Errorf("queried platforms = %v", queried)
	}
}

func TestPostAnalytics_ResultsAreUnwrapped(t *testing.T) {
	s := newTestServer(t)
	s.mock.SetResponse(upstream.OpPostAnalytics, `{"post":{"id":"P1"},"items":[{"likes":1}]}`)

	rec := s.do(t, http.MethodGet, "/api/v1/analytics/post/P1?platformType=tiktok", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	want := `{"postId":"P1","analytics":[{"post":{"id":"P1"},"items":[{"likes":1}]}]}`
	var got, expected any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if err := json.Unmarshal([]byte(want), &expected); err != nil {
		t.Fatalf("decode want: %v", err)
	}
	gotJSON, _ := json.Marshal(got)
	wantJSON, _ := json.Marshal(expected)
	if string(gotJSON) != string(wantJSON) {
		t.Errorf("body = %s, want %s", gotJSON, wantJSON)
	}
}

func TestPostAnalytics_BlankPlatformRejected(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/v1/analytics/post/P1?platformType=%20%20", "")
	assertError(t, rec, http.StatusBadRequest, ErrCodeBadRequest, "")
	if msg := decodeBody[ErrorBody](t, rec).Message; !strings.HasPrefix(msg, "platformType must be one of ") {
		t.Errorf("message = %q", msg)
	}
	s.assertNoUpstreamCalls(t)
}

func TestPostAnalytics_EmptyPlatformDetects(t *testing.T) {
	s := newTestServer(t)
	s.mock.SetPost(&upstream.Post{ID: "P1", Data: map[string]json.RawMessage{
		"PINTEREST": json.RawMessage(`{"text":"a"}`),
	}})

	rec := s.do(t, http.MethodGet, "/api/v1/analytics/post/P1?platformType=", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	s.onlyCall(t, upstream.OpGetPost)
	p := s.onlyCall(t, upstream.OpPostAnalytics).Arg(0).(upstream.PostAnalyticsParams)
	if p.PlatformType != "PINTEREST" {
		t.Errorf("platform = %s", p.PlatformType)
	}
}

func TestPostAnalytics_ExplicitPlatformSkipsLookup(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodGet, "/api/v1/analytics/post/P1?platformType=facebook", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if n := len(s.mock.CallsTo(upstream.OpGetPost)); n != 0 {
		t.Errorf("GetPost called %d times", n)
	}
	p := s.onlyCall(t, upstream.OpPostAnalytics).Arg(0).(upstream.PostAnalyticsParams)
	if p.PlatformType != "FACEBOOK" || p.PostID != "P1" {
		t.Errorf("params = %+v", p)
	}
}

func TestPostAnalytics_NoPlatforms(t *testing.T) {
	s := newTestServer(t)
	s.mock.SetPost(&upstream.Post{ID: "P1", Data: map[string]json.RawMessage{
		"SLACK": json.RawMessage(`{"text":"a"}`),
	}})

	rec := s.do(t, http.MethodGet, "/api/v1/analytics/post/P1", "")
	assertError(t, rec, http.StatusNotFound, ErrCodeNotFound, "Post does not include analytics-enabled platforms")
}

func TestPostAnalytics_CircuitOpen(t *testing.T) {
	s := newTestServer(t)
	s.mock.SetError(upstream.OpGetPost, errors.Join(upstream.ErrCircuitOpen, errors.New("open")))

	rec := s.do(t, http.MethodGet, "/api/v1/analytics/post/P1", "")
	assertError(t, rec, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "bundle.social is temporarily unavailable")
}

func TestForcePostAnalytics_RequiresPlatform(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/v1/analytics/post/P1/force-refresh", "")
	assertError(t, rec, http.StatusBadRequest, ErrCodeBadRequest, "platformType is required")
	s.assertNoUpstreamCalls(t)
}
