// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"io"
)

// parseFlags parses the command-line flags in args.
//
// Flags:
//
//	-p/-port          listen port
//	-c/-config        json file path with configs
//	-hume-base-url    Hume API base URL
//	-gemini-base-url  Generative Language API base URL
//	-gemini-model     Gemini model name
//
// Credentials have no flags and are read from the environment or the JSON
// file only.
func parseFlags(args []string) (*StructuredConfig, error) {
	var port int
	var jsonConfigPath string
	var humeBaseURL string
	var geminiBaseURL string
	var geminiModel string

	fs := flag.NewFlagSet("mind-relay", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.IntVar(&port, "p", 0, "Listen port")
	fs.IntVar(&port, "port", 0, "Listen port (alias)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&humeBaseURL, "hume-base-url", "", "Hume API base URL")
	fs.StringVar(&geminiBaseURL, "gemini-base-url", "", "Generative Language API base URL")
	fs.StringVar(&geminiModel, "gemini-model", "", "Gemini model name")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Server: Server{
			Port: port,
		},
		Adapter: Adapter{
			Hume: Hume{
				BaseURL: humeBaseURL,
			},
			Gemini: Gemini{
				BaseURL: geminiBaseURL,
				Model:   geminiModel,
			},
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
