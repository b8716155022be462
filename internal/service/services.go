// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/mind-relay/internal/adapter"
	"github.com/MKhiriev/mind-relay/internal/logger"
)

type Services struct {
	EmotionService EmotionService
	ChatService    ChatService
}

func NewServices(hume adapter.HumeAdapter, gemini adapter.GeminiAdapter, logger *logger.Logger) *Services {
	logger.Info().Msg("creating new services...")

	return &Services{
		EmotionService: NewEmotionService(hume, logger),
		ChatService:    NewChatService(gemini, logger),
	}
}
