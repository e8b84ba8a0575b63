// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package params

import (
	"math"
	"strconv"
	"strings"
)

// floatValuer is satisfied by json.Number.
type floatValuer interface {
	Float64() (float64, error)
}

// stringValue extracts a trimmed, non-empty string from a raw value.
// Slices contribute their first element only.
func stringValue(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		s := strings.TrimSpace(val)
		return s, s != ""
	case *string:
		if val == nil {
			return "", false
		}
		return stringValue(*val)
	case []string:
		if len(val) == 0 {
			return "", false
		}
		return stringValue(val[0])
	case []any:
		if len(val) == 0 {
			return "", false
		}
		return stringValue(val[0])
	default:
		return "", false
	}
}

// RequireString returns the trimmed string held by v or a MissingFieldError
// naming field when v is absent, blank, or not a string.
func RequireString(field string, v any) (string, error) {
	s, ok := stringValue(v)
	if !ok {
		return "", &MissingFieldError{Field: field}
	}
	return s, nil
}

// OptionalString returns the trimmed string held by v, or false when v is
// absent, blank, or not a string.
func OptionalString(v any) (string, bool) {
	return stringValue(v)
}

// OptionalNumber parses v as a finite number. Strings are parsed in decimal
// or exponent form; decoded JSON numbers are accepted as they are. Anything
// else, including NaN and infinities, is absent.
func OptionalNumber(v any) (float64, bool) {
	switch val := v.(type) {
	case nil:
		return 0, false
	case []string:
		if len(val) == 0 {
			return 0, false
		}
		return OptionalNumber(val[0])
	case []any:
		if len(val) == 0 {
			return 0, false
		}
		return OptionalNumber(val[0])
	case float64:
		return finite(val)
	case float32:
		return finite(float64(val))
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case int32:
		return float64(val), true
	case floatValuer:
		f, err := val.Float64()
		if err != nil {
			return 0, false
		}
		return finite(f)
	}

	s, ok := stringValue(v)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return finite(f)
}

func finite(f float64) (float64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// OptionalBool returns v when it is a JSON boolean. Strings are not
// interpreted; use OptionalFlag for textual switches.
func OptionalBool(v any) (bool, bool) {
	b, ok := v.(bool)
	return b, ok
}

// OptionalFlag interprets v as an on/off switch. Booleans pass through;
// strings accept true/1/yes/y/on and false/0/no/n/off in any case.
func OptionalFlag(v any) (bool, bool) {
	if b, ok := v.(bool); ok {
		return b, true
	}
	s, ok := stringValue(v)
	if !ok {
		return false, false
	}
	switch strings.ToLower(s) {
	case "true", "1", "yes", "y", "on":
		return true, true
	case "false", "0", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}

// StringList returns the trimmed, non-empty string items of a slice value.
// The boolean is false when v is not a slice; non-string items are skipped.
func StringList(v any) ([]string, bool) {
	var items []any
	switch val := v.(type) {
	case []string:
		items = make([]any, len(val))
		for i, s := range val {
			items[i] = s
		}
	case []any:
		items = val
	default:
		return nil, false
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			continue
		}
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out, true
}

// EnumMember returns the canonical member of e matching v, or false when v
// is absent or not a member.
func EnumMember(v any, e *Enum) (string, bool) {
	s, ok := stringValue(v)
	if !ok {
		return "", false
	}
	return e.Lookup(s)
}

// RequireEnum is EnumMember for mandatory fields. Absent input yields a
// MissingFieldError, unmatched input an InvalidEnumError.
func RequireEnum(field string, v any, e *Enum) (string, error) {
	s, ok := stringValue(v)
	if !ok {
		return "", &MissingFieldError{Field: field}
	}
	m, ok := e.Lookup(s)
	if !ok {
		return "", &InvalidEnumError{Field: field, Allowed: e.Values()}
	}
	return m, nil
}

// EnumSet normalizes a comma-separated string or a list into the members of
// e, in input order. Unrecognized items are dropped without error.
//
// The boolean reports whether a list was given at all: nil input returns
// (nil, false), while an empty or fully unrecognized list returns an empty
// non-nil slice and true.
func EnumSet(v any, e *Enum) ([]string, bool) {
	items, ok := splitItems(v)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if m, ok := e.Lookup(item); ok {
			out = append(out, m)
		}
	}
	return out, true
}

// RequireEnumSet is the strict form of EnumSet used when the set is part of
// a payload. Every item must be a member and at least one must be given.
func RequireEnumSet(field string, v any, e *Enum) ([]string, error) {
	items, _ := splitItems(v)
	out := make([]string, 0, len(items))
	for _, item := range items {
		m, ok := e.Lookup(item)
		if !ok {
			return nil, &InvalidEnumError{Field: field, Allowed: e.Values()}
		}
		out = append(out, m)
	}
	if len(out) == 0 {
		return nil, &MissingFieldError{Field: field}
	}
	return out, nil
}

// splitItems flattens v into trimmed, non-empty items. Strings and the
// string elements of a list are split on commas.
func splitItems(v any) ([]string, bool) {
	var raw []string
	switch val := v.(type) {
	case string:
		raw = []string{val}
	case []string:
		raw = val
	case []any:
		raw = make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				raw = append(raw, s)
			}
		}
	default:
		return nil, false
	}

	items := make([]string, 0, len(raw))
	for _, r := range raw {
		for _, part := range strings.Split(r, ",") {
			if part = strings.TrimSpace(part); part != "" {
				items = append(items, part)
			}
		}
	}
	return items, true
}
