// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package models

import (
	"testing"

	"github.com/goccy/go-json"
)

func TestAggregateAnalytics(t *testing.T) {
	items := []json.RawMessage{
		json.RawMessage(`{"impressions": 10, "views": 4, "likes": 2, "followers": 100, "date": "2026-01-01"}`),
		json.RawMessage(`{"impressions": 5, "impressionsUnique": 3, "views": null, "comments": 1, "postCount": 2}`),
		json.RawMessage(`{"likes": "many", "following": 7, "viewsUnique": 1.5}`),
		json.RawMessage(`[1, 2, 3]`),
	}

	got := AggregateAnalytics(items)
	want := AnalyticsTotals{
		Impressions:       15,
		ImpressionsUnique: 3,
		Views:             4,
		ViewsUnique:       1.5,
		Likes:             2,
		Comments:          1,
		PostCount:         2,
		Followers:         100,
		Following:         7,
	}
	if got != want {
		t.Errorf("AggregateAnalytics() = %+v\nwant %+v", got, want)
	}
}

func TestAggregateAnalytics_Empty(t *testing.T) {
	if got := AggregateAnalytics(nil); got != (AnalyticsTotals{}) {
		t.Errorf("AggregateAnalytics(nil) = %+v, want zero", got)
	}
}

func TestAnalyticsTotals_JSONFieldNames(t *testing.T) {
	data, err := json.Marshal(AnalyticsTotals{ImpressionsUnique: 1, PostCount: 2})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var decoded map[string]float64
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	for _, key := range []string{"impressions", "impressionsUnique", "views", "viewsUnique", "likes", "comments", "postCount", "followers", "following"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("missing key %q in %s", key, data)
		}
	}
}
