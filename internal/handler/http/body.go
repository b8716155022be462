// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/mind-relay/internal/app"
	"github.com/MKhiriev/mind-relay/internal/logger"
	"github.com/MKhiriev/mind-relay/internal/utils"
	"github.com/MKhiriev/mind-relay/models"
)

// maxRequestBodySize caps inbound JSON bodies at 100 KiB.
const maxRequestBodySize = 100 << 10

// readBody reads at most maxRequestBodySize bytes of the request body.
// On failure it writes the response itself: 413 for an oversized body,
// otherwise 400 with badRequestMsg. ok is false when a response was written.
func readBody(w http.ResponseWriter, r *http.Request, badRequestMsg string) (body []byte, ok bool) {
	log := logger.FromRequest(r)

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBodySize))
	if err == nil {
		return body, true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		log.Warn().Int64("limit", tooLarge.Limit).Msg("request body too large")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgBodyTooLarge}, http.StatusRequestEntityTooLarge)
		return nil, false
	}

	log.Err(err).Msg("error reading request body")
	utils.WriteJSON(w, models.ErrorResponse{Error: badRequestMsg}, http.StatusBadRequest)
	return nil, false
}
