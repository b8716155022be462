// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the relay semantics between the HTTP handlers and
// the provider adapters.
package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/mind-relay/models"
)

// EmotionService relays calls to the emotion-AI provider.
type EmotionService interface {
	// ForwardMessage sends the caller's input and persona upstream with the
	// caller-supplied key and returns the provider body unchanged.
	ForwardMessage(ctx context.Context, req models.HumeMessageRequest) (json.RawMessage, error)

	// IssueToken obtains a short-lived access token using the server-held
	// key pair and returns the provider body unchanged.
	IssueToken(ctx context.Context) (json.RawMessage, error)
}

// ChatService produces therapist replies from the generative model.
type ChatService interface {
	// Reply builds the therapist prompt around message, calls the model and
	// returns the first candidate's text with the reply timestamp.
	Reply(ctx context.Context, message string) (models.ChatReply, error)
}
