// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the final merged [StructuredConfig] can be used at
// startup: the port is in range and every upstream base URL is absolute.
//
// Credentials are not checked. A missing key makes the corresponding
// upstream call fail at request time.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidServerConfigs, cfg.Server.Port)
	}

	if err := validateBaseURL(cfg.Adapter.Hume.BaseURL); err != nil {
		return fmt.Errorf("%w: hume base url: %w", ErrInvalidAdapterConfigs, err)
	}
	if err := validateBaseURL(cfg.Adapter.Gemini.BaseURL); err != nil {
		return fmt.Errorf("%w: gemini base url: %w", ErrInvalidAdapterConfigs, err)
	}
	if cfg.Adapter.Gemini.Model == "" {
		return fmt.Errorf("%w: empty gemini model", ErrInvalidAdapterConfigs)
	}

	return nil
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%q must include scheme and host", raw)
	}

	return nil
}
