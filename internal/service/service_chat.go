// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/mind-relay/internal/adapter"
	"github.com/MKhiriev/mind-relay/internal/logger"
	"github.com/MKhiriev/mind-relay/models"
)

// TimestampLayout is ISO-8601 in UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

type chatService struct {
	gemini adapter.GeminiAdapter
	now    func() time.Time

	logger *logger.Logger
}

func NewChatService(gemini adapter.GeminiAdapter, logger *logger.Logger) ChatService {
	return &chatService{
		gemini: gemini,
		now:    time.Now,
		logger: logger,
	}
}

func (s *chatService) Reply(ctx context.Context, message string) (models.ChatReply, error) {
	resp, err := s.gemini.GenerateContent(ctx, models.NewTextRequest(BuildPrompt(message)))
	if err != nil {
		return models.ChatReply{}, fmt.Errorf("generate reply: %w", err)
	}

	text, err := firstCandidateText(resp)
	if err != nil {
		return models.ChatReply{}, fmt.Errorf("generate reply: %w", err)
	}

	return models.ChatReply{
		Response:  text,
		Timestamp: s.now().UTC().Format(TimestampLayout),
	}, nil
}

// firstCandidateText returns the first part's text. A part without text,
// such as inline data, yields an empty response rather than an error.
func firstCandidateText(resp models.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrNoCandidates
	}

	return resp.Candidates[0].Content.Parts[0].Text, nil
}
