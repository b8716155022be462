// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHumeMessageRequest_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
		want HumeMessageRequest
	}{
		{
			name: "string apiKey",
			body: `{"input":"hi","persona":{"tone":"warm"},"apiKey":"abc"}`,
			want: HumeMessageRequest{Input: json.RawMessage(`"hi"`), Persona: json.RawMessage(`{"tone":"warm"}`), APIKey: "abc"},
		},
		{
			name: "escaped string apiKey is unquoted",
			body: `{"apiKey":"a\"b"}`,
			want: HumeMessageRequest{APIKey: `a"b`},
		},
		{name: "number apiKey", body: `{"apiKey":12345}`, want: HumeMessageRequest{APIKey: "12345"}},
		{name: "float apiKey", body: `{"apiKey":1.5}`, want: HumeMessageRequest{APIKey: "1.5"}},
		{name: "bool apiKey", body: `{"apiKey":false}`, want: HumeMessageRequest{APIKey: "false"}},
		{name: "null apiKey", body: `{"apiKey":null}`, want: HumeMessageRequest{APIKey: "null"}},
		{name: "object apiKey", body: `{"apiKey":{"k":1}}`, want: HumeMessageRequest{APIKey: "[object Object]"}},
		{name: "missing apiKey", body: `{"input":1}`, want: HumeMessageRequest{Input: json.RawMessage(`1`), APIKey: "undefined"}},
		{name: "null input is kept", body: `{"input":null}`, want: HumeMessageRequest{Input: json.RawMessage(`null`), APIKey: "undefined"}},
		{name: "top-level array", body: `[{"apiKey":"abc"}]`, want: HumeMessageRequest{APIKey: "undefined"}},
		{name: "top-level number", body: `42`, want: HumeMessageRequest{APIKey: "undefined"}},
		{name: "top-level null", body: `null`, want: HumeMessageRequest{APIKey: "undefined"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got HumeMessageRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHumeMessageRequest_UnmarshalJSON_Malformed(t *testing.T) {
	var got HumeMessageRequest
	err := json.Unmarshal([]byte(`{"apiKey":`), &got)

	var syntaxErr *json.SyntaxError
	assert.ErrorAs(t, err, &syntaxErr)
}

func TestHumeMessageRequest_Message(t *testing.T) {
	req := HumeMessageRequest{Input: json.RawMessage(`"hi"`), APIKey: "secret"}

	out, err := json.Marshal(req.Message())
	require.NoError(t, err)
	assert.JSONEq(t, `{"input":"hi"}`, string(out))
	assert.NotContains(t, string(out), "secret")
}
