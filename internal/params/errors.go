// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package params

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadRequest is the kind shared by every normalization failure.
// Match it with errors.Is to map the failure to a 400 response.
var ErrBadRequest = errors.New("bad request")

// MissingFieldError reports a required field that was absent, blank,
// or of the wrong shape.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return e.Field + " is required"
}

// Is reports ErrBadRequest as the error kind.
func (e *MissingFieldError) Is(target error) bool {
	return target == ErrBadRequest
}

// InvalidEnumError reports a required enumerated field whose value did not
// match any allowed member. Allowed is listed in declaration order so the
// caller can correct the request.
type InvalidEnumError struct {
	Field   string
	Allowed []string
}

func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("%s must be one of %s", e.Field, strings.Join(e.Allowed, ", "))
}

// Is reports ErrBadRequest as the error kind.
func (e *InvalidEnumError) Is(target error) bool {
	return target == ErrBadRequest
}

// badRequestError carries a free-form message for shape checks that are not
// tied to a single field.
type badRequestError struct {
	msg string
}

func (e *badRequestError) Error() string { return e.msg }

func (e *badRequestError) Is(target error) bool { return target == ErrBadRequest }

// BadRequest returns an error of kind ErrBadRequest with the given message.
func BadRequest(msg string) error {
	return &badRequestError{msg: msg}
}

// BadRequestf formats a message and returns an error of kind ErrBadRequest.
func BadRequestf(format string, args ...any) error {
	return &badRequestError{msg: fmt.Sprintf(format, args...)}
}
