// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains application-level constants shared by the relay's
// handlers.
//
// The Msg* constants are the exact strings written into the "error" field of
// HTTP responses. Browser clients match on them, so the wording is fixed.
package app

const (
	// MsgInvalidJSON is returned by /api/hume when the body is not JSON.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgHumeFailed is returned by /api/hume for any upstream failure.
	MsgHumeFailed = "Failed to fetch from Hume AI API"

	// MsgInvalidMessage is returned by /api/chat when message is not a
	// non-empty string.
	MsgInvalidMessage = "Invalid message input"

	// MsgBodyTooLarge is returned with 413 when a request body exceeds the
	// size limit.
	MsgBodyTooLarge = "request entity too large"

	// MsgChatFailed is returned by /api/chat for any upstream failure.
	MsgChatFailed = "Failed to generate response"
)
