// bundlerelay - bundle.social API Relay
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/bundlerelay

package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/tomtom215/bundlerelay/internal/params"
	"github.com/tomtom215/bundlerelay/internal/upstream"
	"github.com/tomtom215/bundlerelay/internal/validation"
)

// HTTPError is a handler-level failure with an explicit status, such as a
// lookup that found nothing.
type HTTPError struct {
	Status  int
	Code    string
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Status, e.Code, e.Message)
}

// newHTTPError builds an HTTPError whose code follows the status.
func newHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Code: codeForStatus(status), Message: message}
}

func notFound(format string, args ...any) *HTTPError {
	return newHTTPError(http.StatusNotFound, fmt.Sprintf(format, args...))
}

// errBodyNotObject rejects bodies that are arrays, scalars or malformed.
var errBodyNotObject = params.BadRequest("request body must be a JSON object")

// errorResponse is what mapError decides for an error: the status and the
// body fields other than request_id.
type errorResponse struct {
	Status  int
	Code    string
	Message string
	Details any
}

// mapError translates a handler error into its HTTP form. Order matters:
// typed errors are checked before the catch-all.
func mapError(err error) errorResponse {
	var (
		httpErr       *HTTPError
		validationErr *validation.RequestValidationError
		apiErr        *upstream.APIError
	)

	switch {
	case errors.As(err, &validationErr):
		converted := validationErr.ToAPIError()
		return errorResponse{
			Status:  http.StatusBadRequest,
			Code:    converted.Code,
			Message: converted.Message,
			Details: converted.Details,
		}

	case errors.Is(err, params.ErrBadRequest):
		return errorResponse{Status: http.StatusBadRequest, Code: ErrCodeBadRequest, Message: err.Error()}

	case errors.As(err, &httpErr):
		return errorResponse{Status: httpErr.Status, Code: httpErr.Code, Message: httpErr.Message}

	case errors.As(err, &apiErr):
		status := apiErr.Status
		if status < 400 || status > 599 {
			status = http.StatusInternalServerError
		}
		resp := errorResponse{Status: status, Code: ErrCodeUpstream, Message: apiErr.Message}
		if len(apiErr.Body) > 0 {
			resp.Details = apiErr.Body
		}
		return resp

	case errors.Is(err, upstream.ErrCircuitOpen):
		return errorResponse{
			Status:  http.StatusServiceUnavailable,
			Code:    ErrCodeServiceUnavailable,
			Message: "bundle.social is temporarily unavailable",
		}

	default:
		return errorResponse{
			Status:  http.StatusInternalServerError,
			Code:    ErrCodeInternalError,
			Message: "Internal Server Error",
		}
	}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeBadRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusMethodNotAllowed:
		return ErrCodeMethodNotAllowed
	case http.StatusRequestEntityTooLarge:
		return ErrCodePayloadTooLarge
	case http.StatusTooManyRequests:
		return ErrCodeTooManyRequests
	case http.StatusServiceUnavailable:
		return ErrCodeServiceUnavailable
	}
	if status >= 500 {
		return ErrCodeInternalError
	}
	return ErrCodeBadRequest
}
