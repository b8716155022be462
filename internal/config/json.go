// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig is the on-disk layout of the optional JSON config.
type StructuredJSONConfig struct {
	Server struct {
		Port int `json:"port"`
	} `json:"server,omitempty"`

	Hume struct {
		BaseURL   string `json:"base_url"`
		APIKey    string `json:"api_key"`
		SecretKey string `json:"secret_key"`
	} `json:"hume,omitempty"`

	Gemini struct {
		BaseURL string `json:"base_url"`
		Model   string `json:"model"`
		APIKey  string `json:"api_key"`
	} `json:"gemini,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Server: Server{
			Port: jsonCfg.Server.Port,
		},
		Adapter: Adapter{
			Hume: Hume{
				BaseURL:   jsonCfg.Hume.BaseURL,
				APIKey:    Secret(jsonCfg.Hume.APIKey),
				SecretKey: Secret(jsonCfg.Hume.SecretKey),
			},
			Gemini: Gemini{
				BaseURL: jsonCfg.Gemini.BaseURL,
				Model:   jsonCfg.Gemini.Model,
				APIKey:  Secret(jsonCfg.Gemini.APIKey),
			},
		},
		JSONFilePath: "",
	}

	return cfg, nil
}
