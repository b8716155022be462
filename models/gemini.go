// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// GenerateContentRequest is the body of a Gemini generateContent call.
type GenerateContentRequest struct {
	Contents []GeminiContent `json:"contents"`
}

// GenerateContentResponse is the subset of the Gemini generateContent
// response the relay consumes.
type GenerateContentResponse struct {
	Candidates []GeminiCandidate `json:"candidates"`
}

// GeminiCandidate is a single generated alternative.
type GeminiCandidate struct {
	Content      GeminiContent `json:"content"`
	FinishReason string        `json:"finishReason,omitempty"`
}

// GeminiContent groups the parts of one conversational turn.
type GeminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []GeminiPart `json:"parts"`
}

// GeminiPart is a text fragment of a turn.
type GeminiPart struct {
	Text string `json:"text"`
}

// NewTextRequest wraps a single-turn prompt into the request shape
// generateContent expects.
func NewTextRequest(prompt string) GenerateContentRequest {
	return GenerateContentRequest{
		Contents: []GeminiContent{
			{Parts: []GeminiPart{{Text: prompt}}},
		},
	}
}
