// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/mind-relay/internal/app"
	"github.com/MKhiriev/mind-relay/internal/logger"
	"github.com/MKhiriev/mind-relay/internal/utils"
	"github.com/MKhiriev/mind-relay/internal/validators"
	"github.com/MKhiriev/mind-relay/models"
)

// chat validates {message}, asks the model for a therapist reply and
// returns it with a timestamp.
func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	ctx := r.Context()

	body, ok := readBody(w, r, app.MsgInvalidMessage)
	if !ok {
		return
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidMessage}, http.StatusBadRequest)
		return
	}

	if err := h.chatValidator.Validate(ctx, doc, validators.FieldMessage); err != nil {
		log.Err(err).Msg("invalid chat request")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidMessage}, http.StatusBadRequest)
		return
	}

	var req models.ChatRequest
	if err := json.Unmarshal(body, &req); err != nil {
		log.Err(err).Msg("error decoding chat request")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidMessage}, http.StatusBadRequest)
		return
	}

	reply, err := h.services.ChatService.Reply(ctx, req.Message)
	if err != nil {
		logUpstreamError(log, err, "error generating response")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgChatFailed}, http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, reply, http.StatusOK)
}
