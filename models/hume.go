// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
)

// HumeMessageRequest is the inbound body of POST /api/hume.
//
// Input and Persona are opaque to the relay and forwarded byte-for-byte.
// APIKey is supplied by the caller and used as the upstream bearer token.
// Any well-formed JSON decodes; see [HumeMessageRequest.UnmarshalJSON].
type HumeMessageRequest struct {
	Input   json.RawMessage `json:"input,omitempty"`
	Persona json.RawMessage `json:"persona,omitempty"`
	APIKey  string          `json:"apiKey"`
}

// UnmarshalJSON accepts any valid JSON document. Bodies that are not
// objects carry no fields. The apiKey value is rendered as text the way a
// browser template would: strings as is, objects as "[object Object]",
// a missing key as "undefined" and anything else as its literal JSON.
func (r *HumeMessageRequest) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			return err
		}
		fields = nil
	}

	*r = HumeMessageRequest{
		Input:   fields["input"],
		Persona: fields["persona"],
		APIKey:  apiKeyText(fields["apiKey"]),
	}
	return nil
}

func apiKeyText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "undefined"
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	case '{':
		return "[object Object]"
	}

	return string(raw)
}

// HumeMessage is the outbound body sent to the Hume message endpoint.
// Keys absent from the inbound request are omitted.
type HumeMessage struct {
	Input   json.RawMessage `json:"input,omitempty"`
	Persona json.RawMessage `json:"persona,omitempty"`
}

// Message strips the caller credential and returns the outbound payload.
func (r HumeMessageRequest) Message() HumeMessage {
	return HumeMessage{
		Input:   r.Input,
		Persona: r.Persona,
	}
}
