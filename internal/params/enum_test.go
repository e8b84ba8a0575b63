// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package params

import (
	"testing"
)

func TestEnum_Lookup(t *testing.T) {
	e := NewEnum("orderBy", "createdAt", "updatedAt", "postDate")

	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"createdAt", "createdAt", true},
		{"CREATEDAT", "createdAt", true},
		{" postdate ", "postDate", true},
		{"deletedAt", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := e.Lookup(tt.input)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Lookup(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestEnum_Contains(t *testing.T) {
	e := NewEnum("tier", "FREE", "PRO")
	if !e.Contains("FREE") {
		t.Error("Contains(FREE) = false")
	}
	if e.Contains("free") {
		t.Error("Contains should require canonical casing")
	}
}

func TestEnum_DuplicatesAndValues(t *testing.T) {
	e := NewEnum("tier", "FREE", "free", "PRO")
	if e.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", e.Len())
	}
	values := e.Values()
	values[0] = "MUTATED"
	if e.Values()[0] != "FREE" {
		t.Error("Values() should return a copy")
	}
	if e.String() != "FREE, PRO" {
		t.Errorf("String() = %q", e.String())
	}
	if e.Name() != "tier" {
		t.Errorf("Name() = %q", e.Name())
	}
}
