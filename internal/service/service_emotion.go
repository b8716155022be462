// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/mind-relay/internal/adapter"
	"github.com/MKhiriev/mind-relay/internal/logger"
	"github.com/MKhiriev/mind-relay/models"
)

type emotionService struct {
	hume adapter.HumeAdapter

	logger *logger.Logger
}

func NewEmotionService(hume adapter.HumeAdapter, logger *logger.Logger) EmotionService {
	return &emotionService{
		hume:   hume,
		logger: logger,
	}
}

func (s *emotionService) ForwardMessage(ctx context.Context, req models.HumeMessageRequest) (json.RawMessage, error) {
	body, err := s.hume.SendMessage(ctx, req.APIKey, req.Message())
	if err != nil {
		return nil, fmt.Errorf("forward hume message: %w", err)
	}

	return body, nil
}

// IssueToken returns the adapter error unwrapped: its text is what the
// token endpoint reports to the caller.
func (s *emotionService) IssueToken(ctx context.Context) (json.RawMessage, error) {
	return s.hume.IssueToken(ctx)
}
