// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/mind-relay/internal/logger"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client whose relative request URLs
// resolve against baseURL. Every request sends and expects JSON, and resty's
// own diagnostics are routed into log.
//
// No timeout is configured: outbound calls are bounded by the request
// context only.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://api.hume.ai", log)
//	resp, err := client.R().SetContext(ctx).Post("/v0/auth/token")
func NewHTTPClient(baseURL string, log *logger.Logger) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetLogger(restyLogger{log: log}).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: client}
}

// restyLogger adapts *logger.Logger to resty.Logger.
type restyLogger struct {
	log *logger.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.log.Error().Str("component", "resty").Msg(trimMsg(format, v...))
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.log.Warn().Str("component", "resty").Msg(trimMsg(format, v...))
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.log.Debug().Str("component", "resty").Msg(trimMsg(format, v...))
}

func trimMsg(format string, v ...any) string {
	return strings.TrimSpace(fmt.Sprintf(format, v...))
}
