// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package upstream

import (
	"net/url"
	"strconv"
)

// query builds upstream query strings, skipping absent values.
type query struct {
	v url.Values
}

func newQuery() *query {
	return &query{v: url.Values{}}
}

func (q *query) str(key, value string) {
	if value != "" {
		q.v.Set(key, value)
	}
}

// number writes n in its shortest form: 10, not 10.000000.
func (q *query) number(key string, n *float64) {
	if n != nil {
		q.v.Set(key, strconv.FormatFloat(*n, 'f', -1, 64))
	}
}

func (q *query) list(key string, values []string) {
	for _, value := range values {
		q.v.Add(key, value)
	}
}

func (q *query) values() url.Values {
	if len(q.v) == 0 {
		return nil
	}
	return q.v
}
