// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package upstream

import (
	"github.com/goccy/go-json"
)

// Team is the subset of a bundle.social team the relay reads. Raw keeps the
// full upstream document, which MarshalJSON writes back unchanged.
type Team struct {
	ID             string          `json:"id"`
	Name           string          `json:"name,omitempty"`
	SocialAccounts []SocialAccount `json:"socialAccounts"`
	Raw            json.RawMessage `json:"-"`
}

type teamAlias Team

// UnmarshalJSON decodes the known fields and keeps a copy of the input.
func (t *Team) UnmarshalJSON(data []byte) error {
	var alias teamAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*t = Team(alias)
	t.Raw = cloneRaw(data)
	return nil
}

// MarshalJSON returns the original upstream document when there is one.
func (t Team) MarshalJSON() ([]byte, error) {
	if len(t.Raw) > 0 {
		return t.Raw, nil
	}
	return json.Marshal(teamAlias(t))
}

// FindSocialAccount returns the team's account with the given ID.
func (t *Team) FindSocialAccount(id string) (*SocialAccount, bool) {
	for i := range t.SocialAccounts {
		if t.SocialAccounts[i].ID == id {
			return &t.SocialAccounts[i], true
		}
	}
	return nil, false
}

// SocialAccount is a connected platform account.
type SocialAccount struct {
	ID   string          `json:"id"`
	Type string          `json:"type"`
	Raw  json.RawMessage `json:"-"`
}

type socialAccountAlias SocialAccount

// UnmarshalJSON decodes the known fields and keeps a copy of the input.
func (a *SocialAccount) UnmarshalJSON(data []byte) error {
	var alias socialAccountAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*a = SocialAccount(alias)
	a.Raw = cloneRaw(data)
	return nil
}

// MarshalJSON returns the original upstream document when there is one.
func (a SocialAccount) MarshalJSON() ([]byte, error) {
	if len(a.Raw) > 0 {
		return a.Raw, nil
	}
	return json.Marshal(socialAccountAlias(a))
}

// Post is a bundle.social post. Data is keyed by platform type.
type Post struct {
	ID   string                     `json:"id"`
	Data map[string]json.RawMessage `json:"data"`
	Raw  json.RawMessage            `json:"-"`
}

type postAlias Post

// UnmarshalJSON decodes the known fields and keeps a copy of the input.
func (p *Post) UnmarshalJSON(data []byte) error {
	var alias postAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*p = Post(alias)
	p.Raw = cloneRaw(data)
	return nil
}

// MarshalJSON returns the original upstream document when there is one.
func (p Post) MarshalJSON() ([]byte, error) {
	if len(p.Raw) > 0 {
		return p.Raw, nil
	}
	return json.Marshal(postAlias(p))
}

// HasPlatformData reports whether the post carries a data entry for
// platform. Falsy JSON values (null, false, "" and 0) count as absent.
func (p *Post) HasPlatformData(platform string) bool {
	raw, ok := p.Data[platform]
	if !ok {
		return false
	}
	switch string(raw) {
	case "", "null", "false", `""`, "0":
		return false
	}
	return true
}

// SocialAccountAnalytics is the analytics series for one platform account.
type SocialAccountAnalytics struct {
	SocialAccount json.RawMessage   `json:"socialAccount"`
	Items         []json.RawMessage `json:"items"`
	Raw           json.RawMessage   `json:"-"`
}

type socialAccountAnalyticsAlias SocialAccountAnalytics

// UnmarshalJSON decodes the known fields and keeps a copy of the input.
func (a *SocialAccountAnalytics) UnmarshalJSON(data []byte) error {
	var alias socialAccountAnalyticsAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*a = SocialAccountAnalytics(alias)
	a.Raw = cloneRaw(data)
	return nil
}

// MarshalJSON returns the original upstream document when there is one.
func (a SocialAccountAnalytics) MarshalJSON() ([]byte, error) {
	if len(a.Raw) > 0 {
		return a.Raw, nil
	}
	return json.Marshal(socialAccountAnalyticsAlias(a))
}

// decodeInto unmarshals an upstream body into v, naming the operation on failure.
func decodeInto(operation string, raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		return &DecodeError{Operation: operation, Err: errEmptyBody}
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return &DecodeError{Operation: operation, Err: err}
	}
	return nil
}

func cloneRaw(data []byte) json.RawMessage {
	if len(data) == 0 {
		return nil
	}
	out := make(json.RawMessage, len(data))
	copy(out, data)
	return out
}
