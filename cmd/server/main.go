// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/MKhiriev/mind-relay/internal/adapter"
	"github.com/MKhiriev/mind-relay/internal/config"
	"github.com/MKhiriev/mind-relay/internal/handler/http"
	"github.com/MKhiriev/mind-relay/internal/logger"
	"github.com/MKhiriev/mind-relay/internal/server"
	"github.com/MKhiriev/mind-relay/internal/service"
	"github.com/MKhiriev/mind-relay/internal/validators"
	"github.com/MKhiriev/mind-relay/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("mind-relay")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// credentials are config.Secret and print redacted
	log.Debug().Any("config", cfg).Msg("received configs")

	hume, err := adapter.NewHumeAdapter(cfg.Adapter.Hume, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating hume adapter")
	}

	gemini, err := adapter.NewGeminiAdapter(cfg.Adapter.Gemini, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating gemini adapter")
	}

	services := service.NewServices(hume, gemini, log)

	chatValidator, err := validators.NewChatRequestValidator()
	if err != nil {
		log.Fatal().Err(err).Msg("error creating chat validator")
	}

	handler := http.NewHandler(services, chatValidator, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Print(info)
}
