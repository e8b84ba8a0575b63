// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package logging

import (
	"strings"
	"unicode"
)

// maxLogValueLength bounds client-controlled strings written to logs.
const maxLogValueLength = 200

// RedactSecret masks a credential, keeping only the last four characters
// of values long enough that those four do not identify it.
//
//	RedactSecret("sk_live_abcdef123456") == "****3456"
func RedactSecret(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) < 12 {
		return "****"
	}
	return "****" + secret[len(secret)-4:]
}

// SanitizeLogValue prepares a client-supplied value for logging: control
// characters (including newlines, which would forge log lines in console
// format) are replaced and the result is truncated.
func SanitizeLogValue(s string) string {
	var b strings.Builder
	b.Grow(min(len(s), maxLogValueLength))
	n := 0
	for _, r := range s {
		if n >= maxLogValueLength {
			b.WriteString("...")
			break
		}
		if unicode.IsControl(r) {
			r = '_'
		}
		b.WriteRune(r)
		n++
	}
	return b.String()
}
