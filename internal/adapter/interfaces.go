// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound clients for the upstream AI
// providers.
//
// [HumeAdapter] talks to the emotion-AI provider, [GeminiAdapter] to the
// generative-language model provider. Both are built on resty and map every
// non-2xx response to an [*UpstreamError] that matches a status sentinel
// from errors.go via [errors.Is] (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/mind-relay/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// HumeAdapter is the client of the Hume API.
type HumeAdapter interface {
	// SendMessage POSTs msg to the message endpoint using apiKey as the
	// bearer token and returns the provider's JSON body unchanged.
	SendMessage(ctx context.Context, apiKey string, msg models.HumeMessage) (json.RawMessage, error)

	// IssueToken POSTs to the token endpoint with Basic auth built from the
	// configured key pair and returns the provider's JSON body unchanged.
	IssueToken(ctx context.Context) (json.RawMessage, error)
}

// GeminiAdapter is the client of the Generative Language API.
type GeminiAdapter interface {
	// GenerateContent calls generateContent on the configured model and
	// returns the decoded response.
	GenerateContent(ctx context.Context, req models.GenerateContentRequest) (models.GenerateContentResponse, error)
}
