// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/mind-relay/internal/adapter"
	"github.com/MKhiriev/mind-relay/internal/app"
	"github.com/MKhiriev/mind-relay/internal/logger"
	"github.com/MKhiriev/mind-relay/internal/utils"
	"github.com/MKhiriev/mind-relay/models"
)

// forwardHumeMessage relays {input, persona} to the emotion provider using
// the apiKey supplied by the caller and returns the provider body as is.
func (h *Handler) forwardHumeMessage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	body, ok := readBody(w, r, app.MsgInvalidJSON)
	if !ok {
		return
	}

	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}

	// well-formed bodies of any shape are forwarded
	var req models.HumeMessageRequest
	if err := json.Unmarshal(body, &req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidJSON}, http.StatusBadRequest)
		return
	}

	resp, err := h.services.EmotionService.ForwardMessage(r.Context(), req)
	if err != nil {
		logUpstreamError(log, err, "error fetching from Hume AI API")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgHumeFailed}, http.StatusInternalServerError)
		return
	}

	utils.WriteRawJSON(w, resp, http.StatusOK)
}

// issueHumeToken ignores the request body and exchanges the server-held key
// pair for an access token.
func (h *Handler) issueHumeToken(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	resp, err := h.services.EmotionService.IssueToken(r.Context())
	if err != nil {
		logUpstreamError(log, err, "error issuing Hume AI token")
		utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusInternalServerError)
		return
	}

	utils.WriteRawJSON(w, resp, http.StatusOK)
}

// logUpstreamError logs err and, when the provider answered with a JSON
// error payload, that payload as upstream_body.
func logUpstreamError(log *logger.Logger, err error, msg string) {
	event := log.Error().Err(err)

	var upstreamErr *adapter.UpstreamError
	if errors.As(err, &upstreamErr) {
		event = event.Int("upstream_status", upstreamErr.StatusCode)
		if json.Valid(upstreamErr.Body) {
			event = event.RawJSON("upstream_body", upstreamErr.Body)
		}
	}

	event.Msg(msg)
}
