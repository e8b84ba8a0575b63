// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package params

import (
	"net/http"
)

// Query returns the raw value of a query parameter: nil when the key is
// absent, a string for a single occurrence and a []string when repeated.
func Query(r *http.Request, key string) any {
	values, ok := r.URL.Query()[key]
	return fromValues(values, ok)
}

// Path returns the named path value, or nil when it is empty.
func Path(r *http.Request, key string) any {
	v := r.PathValue(key)
	if v == "" {
		return nil
	}
	return v
}

// Form returns the raw value of a form field from a parsed multipart or
// urlencoded body, with the same shape rules as Query.
func Form(r *http.Request, key string) any {
	if r.MultipartForm != nil {
		values, ok := r.MultipartForm.Value[key]
		if ok {
			return fromValues(values, ok)
		}
	}
	values, ok := r.PostForm[key]
	return fromValues(values, ok)
}

// First returns the first non-absent raw value. Handlers use it where a
// field may arrive in the body or the query string.
func First(values ...any) any {
	for _, v := range values {
		if _, ok := stringValue(v); ok {
			return v
		}
	}
	return nil
}

func fromValues(values []string, ok bool) any {
	switch {
	case !ok || len(values) == 0:
		return nil
	case len(values) == 1:
		return values[0]
	default:
		return values
	}
}
