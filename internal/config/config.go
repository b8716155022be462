// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"strconv"
)

// Default values applied before any other source is read.
const (
	DefaultPort          = 3001
	DefaultHumeBaseURL   = "https://api.hume.ai"
	DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com"
	DefaultGeminiModel   = "gemini-1.5-flash"
)

// StructuredConfig is the top-level configuration container for the
// mind-relay server. It aggregates all sub-configurations and is populated
// by merging defaults, environment variables, command-line flags, and an
// optional JSON file.
//
// Env names are kept flat (PORT, GEMINI_API, HUME_API_KEY, ...) so existing
// deployments keep working without renaming their variables.
type StructuredConfig struct {
	// Server holds inbound listener settings.
	Server Server
	// Adapter holds upstream provider endpoints and credentials.
	Adapter Adapter
	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from defaults, environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Server holds network settings for the inbound HTTP listener.
type Server struct {
	// Port is the TCP port the HTTP server listens on.
	// Env: PORT
	Port int `env:"PORT"`
}

// Address returns the listen address in ":port" form.
func (s Server) Address() string {
	return ":" + strconv.Itoa(s.Port)
}

// Adapter groups the settings of every upstream provider.
type Adapter struct {
	Hume   Hume
	Gemini Gemini
}

// Hume holds the emotion-AI provider settings. The key pair is used only by
// the token endpoint; /api/hume authenticates with the caller's own key.
type Hume struct {
	// BaseURL is the scheme and host of the Hume API.
	// Env: HUME_BASE_URL
	BaseURL string `env:"HUME_BASE_URL"`
	// APIKey is the Basic-auth user for the token endpoint.
	// Env: HUME_API_KEY
	APIKey Secret `env:"HUME_API_KEY"`
	// SecretKey is the Basic-auth password for the token endpoint.
	// Env: HUME_SECRET_KEY
	SecretKey Secret `env:"HUME_SECRET_KEY"`
}

// Gemini holds the generative-language model provider settings.
type Gemini struct {
	// BaseURL is the scheme and host of the Generative Language API.
	// Env: GEMINI_BASE_URL
	BaseURL string `env:"GEMINI_BASE_URL"`
	// Model is the model name placed in the generateContent path.
	// Env: GEMINI_MODEL
	Model string `env:"GEMINI_MODEL"`
	// APIKey is sent as the "key" query parameter.
	// Env: GEMINI_API
	APIKey Secret `env:"GEMINI_API"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
