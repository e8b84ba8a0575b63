// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

/*
Package params normalizes loosely typed request input into validated values.

Handlers receive input from three places: path parameters (a single string),
query parameters (a string, or a slice when the key is repeated) and decoded
JSON bodies (any JSON type). Every extractor in this package accepts that raw
value as an `any` and produces one of a small set of shapes:

  - RequireString: non-empty trimmed string, or MissingFieldError
  - OptionalString: non-empty trimmed string, or absent
  - OptionalNumber: finite number, or absent (never fails)
  - EnumMember / RequireEnum: canonical member of an Enum
  - EnumSet / RequireEnumSet: ordered members of an Enum

Scalar extractors honor only the first element of a slice, so
`?teamId=a&teamId=b` yields "a". Whitespace-only strings are absent.

Enum matching is case-insensitive; the returned value is always the member
as declared on the Enum, so callers forward canonical casing regardless of
what the client sent.

# Errors

MissingFieldError and InvalidEnumError both match ErrBadRequest:

	teamID, err := params.RequireString("teamId", params.Query(r, "teamId"))
	if errors.Is(err, params.ErrBadRequest) {
	    // respond 400 with err.Error()
	}

Optional extractors report absence with a boolean and never return errors.
*/
package params
