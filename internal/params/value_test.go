// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package params

import (
	"encoding/json"
	"errors"
	"math"
	"reflect"
	"testing"
)

var testPlatforms = NewEnum("platform",
	"TIKTOK", "YOUTUBE", "INSTAGRAM", "FACEBOOK", "TWITTER", "THREADS", "LINKEDIN",
	"PINTEREST", "REDDIT", "MASTODON", "DISCORD", "SLACK", "BLUESKY", "GOOGLE_BUSINESS",
)

var testLanguages = NewEnum("language", "en", "pl", "fr", "de")

// ===================================================================================================
// RequireString / OptionalString
// ===================================================================================================

func TestRequireString(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		want    string
		wantErr bool
	}{
		{name: "plain string", input: "T1", want: "T1"},
		{name: "trims whitespace", input: "  team-42 \t", want: "team-42"},
		{name: "first wins on string slice", input: []string{"a", "b"}, want: "a"},
		{name: "first wins on any slice", input: []any{"a", "b"}, want: "a"},
		{name: "first element blank", input: []string{" ", "b"}, wantErr: true},
		{name: "nil", input: nil, wantErr: true},
		{name: "empty string", input: "", wantErr: true},
		{name: "whitespace only", input: "   ", wantErr: true},
		{name: "empty slice", input: []string{}, wantErr: true},
		{name: "number is not a string", input: float64(12), wantErr: true},
		{name: "bool is not a string", input: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RequireString("teamId", tt.input)
			if tt.wantErr {
				var missing *MissingFieldError
				if !errors.As(err, &missing) {
					t.Fatalf("RequireString() error = %v, want MissingFieldError", err)
				}
				if missing.Field != "teamId" {
					t.Errorf("Field = %q, want teamId", missing.Field)
				}
				if !errors.Is(err, ErrBadRequest) {
					t.Error("MissingFieldError should match ErrBadRequest")
				}
				if err.Error() != "teamId is required" {
					t.Errorf("Error() = %q", err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("RequireString() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("RequireString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestOptionalString(t *testing.T) {
	if got, ok := OptionalString("  hello "); !ok || got != "hello" {
		t.Errorf("OptionalString() = %q, %v; want hello, true", got, ok)
	}
	for _, in := range []any{nil, "", "  ", []string{}, 3.5} {
		if got, ok := OptionalString(in); ok {
			t.Errorf("OptionalString(%#v) = %q, want absent", in, got)
		}
	}
	s := " ptr "
	if got, ok := OptionalString(&s); !ok || got != "ptr" {
		t.Errorf("OptionalString(*string) = %q, %v", got, ok)
	}
	var nilPtr *string
	if _, ok := OptionalString(nilPtr); ok {
		t.Error("OptionalString(nil *string) should be absent")
	}
}

// ===================================================================================================
// OptionalNumber
// ===================================================================================================

func TestOptionalNumber(t *testing.T) {
	tests := []struct {
		name   string
		input  any
		want   float64
		wantOK bool
	}{
		{name: "integer text", input: "42", want: 42, wantOK: true},
		{name: "padded text", input: " 10 ", want: 10, wantOK: true},
		{name: "decimal text", input: "2.5", want: 2.5, wantOK: true},
		{name: "exponent text", input: "1e3", want: 1000, wantOK: true},
		{name: "negative text", input: "-3", want: -3, wantOK: true},
		{name: "json number", input: float64(7), want: 7, wantOK: true},
		{name: "json.Number", input: json.Number("12"), want: 12, wantOK: true},
		{name: "int", input: 5, want: 5, wantOK: true},
		{name: "first wins", input: []string{"3", "4"}, want: 3, wantOK: true},
		{name: "non numeric", input: "abc"},
		{name: "trailing garbage", input: "10px"},
		{name: "nil", input: nil},
		{name: "blank", input: "  "},
		{name: "NaN text", input: "NaN"},
		{name: "infinity text", input: "Inf"},
		{name: "NaN float", input: math.NaN()},
		{name: "bool", input: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := OptionalNumber(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("OptionalNumber(%#v) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("OptionalNumber(%#v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

// ===================================================================================================
// Flags and lists
// ===================================================================================================

func TestOptionalFlag(t *testing.T) {
	truthy := []any{true, "true", "1", "YES", "y", "On"}
	falsy := []any{false, "false", "0", "no", "N", "off"}
	for _, in := range truthy {
		if got, ok := OptionalFlag(in); !ok || !got {
			t.Errorf("OptionalFlag(%#v) = %v, %v; want true", in, got, ok)
		}
	}
	for _, in := range falsy {
		if got, ok := OptionalFlag(in); !ok || got {
			t.Errorf("OptionalFlag(%#v) = %v, %v; want false", in, got, ok)
		}
	}
	for _, in := range []any{nil, "maybe", 1.0} {
		if _, ok := OptionalFlag(in); ok {
			t.Errorf("OptionalFlag(%#v) should be absent", in)
		}
	}
}

func TestOptionalBool(t *testing.T) {
	if got, ok := OptionalBool(true); !ok || !got {
		t.Error("OptionalBool(true) should be true")
	}
	if _, ok := OptionalBool("true"); ok {
		t.Error("OptionalBool should not interpret strings")
	}
}

func TestStringList(t *testing.T) {
	got, ok := StringList([]any{" u1 ", "", 3.0, "u2", "  "})
	if !ok {
		t.Fatal("StringList() should accept a list")
	}
	if want := []string{"u1", "u2"}; !reflect.DeepEqual(got, want) {
		t.Errorf("StringList() = %v, want %v", got, want)
	}

	if _, ok := StringList("u1,u2"); ok {
		t.Error("StringList() should reject a plain string")
	}
	if got, ok := StringList([]any{}); !ok || len(got) != 0 {
		t.Errorf("StringList(empty) = %v, %v", got, ok)
	}
}

// ===================================================================================================
// Enum extraction
// ===================================================================================================

func TestEnumMember(t *testing.T) {
	tests := []struct {
		input  any
		enum   *Enum
		want   string
		wantOK bool
	}{
		{input: "instagram", enum: testPlatforms, want: "INSTAGRAM", wantOK: true},
		{input: " TikTok ", enum: testPlatforms, want: "TIKTOK", wantOK: true},
		{input: "google_business", enum: testPlatforms, want: "GOOGLE_BUSINESS", wantOK: true},
		{input: []string{"youtube", "bogus"}, enum: testPlatforms, want: "YOUTUBE", wantOK: true},
		{input: "EN", enum: testLanguages, want: "en", wantOK: true},
		{input: "bogus", enum: testPlatforms},
		{input: nil, enum: testPlatforms},
		{input: "", enum: testPlatforms},
	}

	for _, tt := range tests {
		got, ok := EnumMember(tt.input, tt.enum)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("EnumMember(%#v, %s) = %q, %v; want %q, %v",
				tt.input, tt.enum.Name(), got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestRequireEnum(t *testing.T) {
	got, err := RequireEnum("platformType", "instagram", testPlatforms)
	if err != nil || got != "INSTAGRAM" {
		t.Fatalf("RequireEnum() = %q, %v", got, err)
	}

	_, err = RequireEnum("platformType", "bogus", testPlatforms)
	var invalid *InvalidEnumError
	if !errors.As(err, &invalid) {
		t.Fatalf("RequireEnum(bogus) error = %v, want InvalidEnumError", err)
	}
	if !errors.Is(err, ErrBadRequest) {
		t.Error("InvalidEnumError should match ErrBadRequest")
	}
	if invalid.Field != "platformType" || len(invalid.Allowed) != testPlatforms.Len() {
		t.Errorf("InvalidEnumError = %+v", invalid)
	}
	want := "platformType must be one of TIKTOK, YOUTUBE, INSTAGRAM, FACEBOOK, TWITTER, THREADS, " +
		"LINKEDIN, PINTEREST, REDDIT, MASTODON, DISCORD, SLACK, BLUESKY, GOOGLE_BUSINESS"
	if err.Error() != want {
		t.Errorf("Error() = %q\nwant     %q", err.Error(), want)
	}

	_, err = RequireEnum("platformType", nil, testPlatforms)
	var missing *MissingFieldError
	if !errors.As(err, &missing) {
		t.Errorf("RequireEnum(nil) error = %v, want MissingFieldError", err)
	}
}

func TestEnumSet(t *testing.T) {
	tests := []struct {
		name   string
		input  any
		want   []string
		wantOK bool
	}{
		{
			name:   "comma separated with unknown member",
			input:  "tiktok,bogus,instagram",
			want:   []string{"TIKTOK", "INSTAGRAM"},
			wantOK: true,
		},
		{
			name:   "repeated keys",
			input:  []string{"youtube", "Facebook"},
			want:   []string{"YOUTUBE", "FACEBOOK"},
			wantOK: true,
		},
		{
			name:   "repeated keys holding comma lists",
			input:  []string{"instagram,tiktok", "youtube"},
			want:   []string{"INSTAGRAM", "TIKTOK", "YOUTUBE"},
			wantOK: true,
		},
		{
			name:   "json list",
			input:  []any{" linkedin ", 4.0, "threads"},
			want:   []string{"LINKEDIN", "THREADS"},
			wantOK: true,
		},
		{
			name:   "duplicates kept in order",
			input:  "slack,SLACK",
			want:   []string{"SLACK", "SLACK"},
			wantOK: true,
		},
		{name: "empty list given", input: []string{}, want: []string{}, wantOK: true},
		{name: "blank string given", input: " , ,", want: []string{}, wantOK: true},
		{name: "only unknown members", input: "bogus", want: []string{}, wantOK: true},
		{name: "absent", input: nil, want: nil, wantOK: false},
		{name: "wrong type", input: 12.0, want: nil, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := EnumSet(tt.input, testPlatforms)
			if ok != tt.wantOK {
				t.Fatalf("EnumSet() ok = %v, want %v", ok, tt.wantOK)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("EnumSet() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestRequireEnumSet(t *testing.T) {
	got, err := RequireEnumSet("socialAccountTypes", "instagram, tiktok", testPlatforms)
	if err != nil {
		t.Fatalf("RequireEnumSet() unexpected error: %v", err)
	}
	if want := []string{"INSTAGRAM", "TIKTOK"}; !reflect.DeepEqual(got, want) {
		t.Errorf("RequireEnumSet() = %v, want %v", got, want)
	}

	_, err = RequireEnumSet("socialAccountTypes", []any{"instagram", "myspace"}, testPlatforms)
	var invalid *InvalidEnumError
	if !errors.As(err, &invalid) {
		t.Errorf("unknown member error = %v, want InvalidEnumError", err)
	}

	for _, in := range []any{nil, "", []any{}, 3.0} {
		_, err = RequireEnumSet("socialAccountTypes", in, testPlatforms)
		var missing *MissingFieldError
		if !errors.As(err, &missing) {
			t.Errorf("RequireEnumSet(%#v) error = %v, want MissingFieldError", in, err)
		}
	}
}

func TestBadRequest(t *testing.T) {
	err := BadRequest("Provide name or avatarUrl to update the team")
	if !errors.Is(err, ErrBadRequest) {
		t.Error("BadRequest() should match ErrBadRequest")
	}
	if err.Error() != "Provide name or avatarUrl to update the team" {
		t.Errorf("Error() = %q", err.Error())
	}
	if got := BadRequestf("%s accounts do not support channel selection", "TIKTOK").Error(); got != "TIKTOK accounts do not support channel selection" {
		t.Errorf("BadRequestf() = %q", got)
	}
}
