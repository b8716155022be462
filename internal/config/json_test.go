// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"server": { "port": 9000 },
		"hume": {
			"base_url": "http://hume.local",
			"api_key": "hume_key",
			"secret_key": "hume_secret"
		},
		"gemini": {
			"base_url": "http://gemini.local",
			"model": "gemini-json",
			"api_key": "gemini_key"
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "http://hume.local", cfg.Adapter.Hume.BaseURL)
	assert.Equal(t, "hume_key", cfg.Adapter.Hume.APIKey.Reveal())
	assert.Equal(t, "hume_secret", cfg.Adapter.Hume.SecretKey.Reveal())
	assert.Equal(t, "http://gemini.local", cfg.Adapter.Gemini.BaseURL)
	assert.Equal(t, "gemini-json", cfg.Adapter.Gemini.Model)
	assert.Equal(t, "gemini_key", cfg.Adapter.Gemini.APIKey.Reveal())
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	// Act
	cfg, err := parseJSON("definitely-does-not-exist.json")

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_EmptyObject(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}
