// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Sentinels matched by [UpstreamError] through errors.Is.
var (
	ErrBadRequest          = errors.New("upstream bad request")
	ErrUnauthorized        = errors.New("upstream unauthorized")
	ErrForbidden           = errors.New("upstream forbidden")
	ErrNotFound            = errors.New("upstream not found")
	ErrTooManyRequests     = errors.New("upstream rate limited")
	ErrInternalServerError = errors.New("upstream internal server error")
	ErrBadGateway          = errors.New("upstream bad gateway")
	ErrServiceUnavailable  = errors.New("upstream service unavailable")
	ErrUnexpectedStatus    = errors.New("upstream unexpected status")

	// ErrInvalidResponseBody is returned when a 2xx body is not valid JSON.
	ErrInvalidResponseBody = errors.New("invalid upstream response body")
)

// UpstreamError describes a non-2xx provider response.
type UpstreamError struct {
	StatusCode int
	// Body is the raw provider payload, usually a JSON error object.
	Body []byte

	kind error
}

func (e *UpstreamError) Error() string {
	body := strings.TrimSpace(string(e.Body))
	if body == "" {
		body = http.StatusText(e.StatusCode)
	}

	return fmt.Sprintf("upstream responded %d: %s", e.StatusCode, body)
}

// Unwrap returns the status sentinel.
func (e *UpstreamError) Unwrap() error {
	return e.kind
}
