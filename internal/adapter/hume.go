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

const (
	humeMessagePath = "/v1/message"
	humeTokenPath   = "/v0/auth/token"
)

type humeAdapter struct {
	client *utils.HTTPClient

	apiKey    config.Secret
	secretKey config.Secret

	logger *logger.Logger
}

// NewHumeAdapter constructs the resty implementation of [HumeAdapter]
// against cfg.BaseURL. The configured key pair is used only by IssueToken.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed.
func NewHumeAdapter(cfg config.Hume, logger *logger.Logger) (HumeAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid hume base url: %w", err)
	}

	return &humeAdapter{
		client:    utils.NewHTTPClient(baseURL, logger),
		apiKey:    cfg.APIKey,
		secretKey: cfg.SecretKey,
		logger:    logger,
	}, nil
}

// SendMessage implements [HumeAdapter].
func (h *humeAdapter) SendMessage(ctx context.Context, apiKey string, msg models.HumeMessage) (json.RawMessage, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+apiKey).
		SetBody(msg).
		Post(humeMessagePath)
	if err != nil {
		return nil, fmt.Errorf("hume message request: %w", stripURL(err))
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("hume message request: %w", err)
	}

	body, err := decodeRawJSON(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("hume message response: %w", err)
	}

	h.logger.Debug().Int("status", resp.StatusCode()).Int("size", len(body)).Msg("hume message relayed")
	return body, nil
}

// IssueToken implements [HumeAdapter].
func (h *humeAdapter) IssueToken(ctx context.Context) (json.RawMessage, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetBasicAuth(h.apiKey.Reveal(), h.secretKey.Reveal()).
		Post(humeTokenPath)
	if err != nil {
		return nil, fmt.Errorf("hume token request: %w", stripURL(err))
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, fmt.Errorf("hume token request: %w", err)
	}

	body, err := decodeRawJSON(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("hume token response: %w", err)
	}

	h.logger.Debug().Int("status", resp.StatusCode()).Msg("hume token issued")
	return body, nil
}
