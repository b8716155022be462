// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/mind-relay/internal/config"
	"github.com/MKhiriev/mind-relay/internal/logger"
	"github.com/MKhiriev/mind-relay/internal/utils"
	"github.com/MKhiriev/mind-relay/models"
)

const geminiGeneratePath = "/v1beta/models/{model}:generateContent"

type geminiAdapter struct {
	client *utils.HTTPClient

	model  string
	apiKey config.Secret

	logger *logger.Logger
}

// NewGeminiAdapter constructs the resty implementation of [GeminiAdapter].
// The API key travels as the "key" query parameter, so transport errors are
// stripped of their URL before being returned.
func NewGeminiAdapter(cfg config.Gemini, logger *logger.Logger) (GeminiAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid gemini base url: %w", err)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("empty gemini model")
	}

	return &geminiAdapter{
		client: utils.NewHTTPClient(baseURL, logger),
		model:  cfg.Model,
		apiKey: cfg.APIKey,
		logger: logger,
	}, nil
}

// GenerateContent implements [GeminiAdapter].
func (g *geminiAdapter) GenerateContent(ctx context.Context, req models.GenerateContentRequest) (models.GenerateContentResponse, error) {
	var out models.GenerateContentResponse

	resp, err := g.client.R().
		SetContext(ctx).
		SetPathParam("model", g.model).
		SetQueryParam("key", g.apiKey.Reveal()).
		SetBody(req).
		Post(geminiGeneratePath)
	if err != nil {
		return out, fmt.Errorf("gemini generate request: %w", stripURL(err))
	}
	if err = mapHTTPError(resp); err != nil {
		return out, fmt.Errorf("gemini generate request: %w", err)
	}

	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return out, fmt.Errorf("gemini generate response: %w: %w", ErrInvalidResponseBody, err)
	}

	g.logger.Debug().
		Str("model", g.model).
		Int("candidates", len(out.Candidates)).
		Msg("gemini content generated")
	return out, nil
}
