// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package models

import (
	"github.com/goccy/go-json"
)

// AnalyticsTotals sums the counters of a social account's analytics items.
type AnalyticsTotals struct {
	Impressions       float64 `json:"impressions"`
	ImpressionsUnique float64 `json:"impressionsUnique"`
	Views             float64 `json:"views"`
	ViewsUnique       float64 `json:"viewsUnique"`
	Likes             float64 `json:"likes"`
	Comments          float64 `json:"comments"`
	PostCount         float64 `json:"postCount"`
	Followers         float64 `json:"followers"`
	Following         float64 `json:"following"`
}

// analyticsCounters mirrors AnalyticsTotals with lenient fields so a null,
// missing or mistyped counter counts as zero instead of failing the item.
type analyticsCounters struct {
	Impressions       json.RawMessage `json:"impressions"`
	ImpressionsUnique json.RawMessage `json:"impressionsUnique"`
	Views             json.RawMessage `json:"views"`
	ViewsUnique       json.RawMessage `json:"viewsUnique"`
	Likes             json.RawMessage `json:"likes"`
	Comments          json.RawMessage `json:"comments"`
	PostCount         json.RawMessage `json:"postCount"`
	Followers         json.RawMessage `json:"followers"`
	Following         json.RawMessage `json:"following"`
}

// AggregateAnalytics sums the counters of raw analytics items. Items that
// are not JSON objects are skipped.
func AggregateAnalytics(items []json.RawMessage) AnalyticsTotals {
	var totals AnalyticsTotals
	for _, item := range items {
		var c analyticsCounters
		if err := json.Unmarshal(item, &c); err != nil {
			continue
		}
		totals.Impressions += counter(c.Impressions)
		totals.ImpressionsUnique += counter(c.ImpressionsUnique)
		totals.Views += counter(c.Views)
		totals.ViewsUnique += counter(c.ViewsUnique)
		totals.Likes += counter(c.Likes)
		totals.Comments += counter(c.Comments)
		totals.PostCount += counter(c.PostCount)
		totals.Followers += counter(c.Followers)
		totals.Following += counter(c.Following)
	}
	return totals
}

func counter(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		return 0
	}
	return f
}
