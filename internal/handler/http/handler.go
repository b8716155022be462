// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/mind-relay/internal/logger"
	"github.com/MKhiriev/mind-relay/internal/service"
	"github.com/MKhiriev/mind-relay/internal/validators"
)

type Handler struct {
	services      *service.Services
	chatValidator validators.Validator

	logger *logger.Logger
}

func NewHandler(services *service.Services, chatValidator validators.Validator, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		chatValidator: chatValidator,
		logger:        logger,
	}
}
