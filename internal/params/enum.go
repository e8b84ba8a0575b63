// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package params

import (
	"strings"
)

// Enum is a closed set of allowed string literals.
//
// Members are declared in their canonical casing (upper case for platform
// and status names, lower case for language codes and MIME types, camelCase
// for sort fields). Lookup matches input case-insensitively and always
// returns the declared member.
type Enum struct {
	name    string
	members []string
	index   map[string]string
}

// NewEnum creates an Enum with the given name and members. The name is only
// used in diagnostics. Duplicate members (ignoring case) keep the first
// declaration.
func NewEnum(name string, members ...string) *Enum {
	e := &Enum{
		name:    name,
		members: make([]string, 0, len(members)),
		index:   make(map[string]string, len(members)),
	}
	for _, m := range members {
		key := strings.ToLower(m)
		if _, dup := e.index[key]; dup {
			continue
		}
		e.index[key] = m
		e.members = append(e.members, m)
	}
	return e
}

// Name returns the diagnostic name of the set.
func (e *Enum) Name() string {
	return e.name
}

// Values returns a copy of the members in declaration order.
func (e *Enum) Values() []string {
	out := make([]string, len(e.members))
	copy(out, e.members)
	return out
}

// Len returns the number of members.
func (e *Enum) Len() int {
	return len(e.members)
}

// Lookup trims s and returns the canonical member matching it
// case-insensitively.
func (e *Enum) Lookup(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	m, ok := e.index[strings.ToLower(s)]
	return m, ok
}

// Contains reports whether s is a member in its canonical form.
func (e *Enum) Contains(s string) bool {
	m, ok := e.index[strings.ToLower(s)]
	return ok && m == s
}

// String joins the members with ", ".
func (e *Enum) String() string {
	return strings.Join(e.members, ", ")
}
