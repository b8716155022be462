// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusTooManyRequests:     ErrTooManyRequests,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
	http.StatusServiceUnavailable:  ErrServiceUnavailable,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	kind, ok := statusErrors[resp.StatusCode()]
	if !ok {
		kind = ErrUnexpectedStatus
	}

	return &UpstreamError{
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
		kind:       kind,
	}
}

// decodeRawJSON returns body as a RawMessage if it is a valid JSON document.
// The decoder error is kept in the chain so its text describes the problem.
func decodeRawJSON(body []byte) (json.RawMessage, error) {
	var probe any
	if err := json.Unmarshal(body, &probe); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidResponseBody, err)
	}

	return json.RawMessage(body), nil
}

// stripURL drops the request URL from transport errors. Outbound URLs may
// carry credentials in the query string.
func stripURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s request failed: %w", urlErr.Op, urlErr.Err)
	}

	return err
}
