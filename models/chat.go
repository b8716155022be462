// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ChatRequest is the inbound body of POST /api/chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatReply is the success body of POST /api/chat.
type ChatReply struct {
	// Response is the text of the first candidate's first part.
	Response string `json:"response"`

	// Timestamp is the UTC time the reply was produced, ISO-8601 with
	// millisecond precision (e.g. "2026-10-14T09:30:00.000Z").
	Timestamp string `json:"timestamp"`
}
