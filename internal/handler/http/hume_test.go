// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/mind-relay/internal/adapter"
	"github.com/MKhiriev/mind-relay/internal/app"
	"github.com/MKhiriev/mind-relay/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForwardHumeMessage(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		serviceResp json.RawMessage
		serviceErr  error
		wantCalled  bool
		wantReq     models.HumeMessageRequest
		wantStatus  int
		wantBody    string
		wantError   string
	}{
		{
			name:        "relays provider body verbatim",
			body:        `{"input":"hi","persona":{"name":"calm"},"apiKey":"caller-key"}`,
			serviceResp: json.RawMessage(`{"output": "ok" ,"n":1}`),
			wantCalled:  true,
			wantReq: models.HumeMessageRequest{
				Input:   json.RawMessage(`"hi"`),
				Persona: json.RawMessage(`{"name":"calm"}`),
				APIKey:  "caller-key",
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"output": "ok" ,"n":1}`,
		},
		{
			name:        "empty body forwards empty request",
			body:        "",
			serviceResp: json.RawMessage(`{}`),
			wantCalled:  true,
			wantReq:     models.HumeMessageRequest{APIKey: "undefined"},
			wantStatus:  http.StatusOK,
			wantBody:    `{}`,
		},
		{
			name:        "numeric apiKey keeps its literal text",
			body:        `{"input":"hi","persona":"p","apiKey":12345}`,
			serviceResp: json.RawMessage(`{"ok":true}`),
			wantCalled:  true,
			wantReq: models.HumeMessageRequest{
				Input:   json.RawMessage(`"hi"`),
				Persona: json.RawMessage(`"p"`),
				APIKey:  "12345",
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"ok":true}`,
		},
		{
			name:        "boolean apiKey",
			body:        `{"apiKey":true}`,
			serviceResp: json.RawMessage(`{}`),
			wantCalled:  true,
			wantReq:     models.HumeMessageRequest{APIKey: "true"},
			wantStatus:  http.StatusOK,
			wantBody:    `{}`,
		},
		{
			name:        "null apiKey",
			body:        `{"apiKey":null}`,
			serviceResp: json.RawMessage(`{}`),
			wantCalled:  true,
			wantReq:     models.HumeMessageRequest{APIKey: "null"},
			wantStatus:  http.StatusOK,
			wantBody:    `{}`,
		},
		{
			name:        "top-level array forwards empty request",
			body:        `[{"input":"hi"}]`,
			serviceResp: json.RawMessage(`{}`),
			wantCalled:  true,
			wantReq:     models.HumeMessageRequest{APIKey: "undefined"},
			wantStatus:  http.StatusOK,
			wantBody:    `{}`,
		},
		{
			name:        "top-level string forwards empty request",
			body:        `"hello"`,
			serviceResp: json.RawMessage(`{}`),
			wantCalled:  true,
			wantReq:     models.HumeMessageRequest{APIKey: "undefined"},
			wantStatus:  http.StatusOK,
			wantBody:    `{}`,
		},
		{
			name:        "missing fields are left empty",
			body:        `{"apiKey":"k"}`,
			serviceResp: json.RawMessage(`{"ok":true}`),
			wantCalled:  true,
			wantReq:     models.HumeMessageRequest{APIKey: "k"},
			wantStatus:  http.StatusOK,
			wantBody:    `{"ok":true}`,
		},
		{
			name:       "malformed JSON",
			body:       `{"input":`,
			wantStatus: http.StatusBadRequest,
			wantError:  app.MsgInvalidJSON,
		},
		{
			name:       "trailing garbage",
			body:       `{"apiKey":"k"} x`,
			wantStatus: http.StatusBadRequest,
			wantError:  app.MsgInvalidJSON,
		},
		{
			name:       "body over the size limit",
			body:       `{"input":"` + strings.Repeat("a", maxRequestBodySize) + `"}`,
			wantStatus: http.StatusRequestEntityTooLarge,
			wantError:  app.MsgBodyTooLarge,
		},
		{
			name:       "upstream failure",
			body:       `{"input":"hi","apiKey":"k"}`,
			serviceErr: fmt.Errorf("forward hume message: %w", &adapter.UpstreamError{StatusCode: http.StatusUnauthorized, Body: []byte(`{"message":"bad key"}`)}),
			wantCalled: true,
			wantReq:    models.HumeMessageRequest{Input: json.RawMessage(`"hi"`), APIKey: "k"},
			wantStatus: http.StatusInternalServerError,
			wantError:  app.MsgHumeFailed,
		},
		{
			name:       "transport failure",
			body:       `{}`,
			serviceErr: errors.New("dial tcp: connection refused"),
			wantCalled: true,
			wantReq:    models.HumeMessageRequest{APIKey: "undefined"},
			wantStatus: http.StatusInternalServerError,
			wantError:  app.MsgHumeFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			emotion := &mockEmotionService{
				forwardMessageFn: func(_ context.Context, req models.HumeMessageRequest) (json.RawMessage, error) {
					called = true
					assert.Equal(t, tt.wantReq, req)
					return tt.serviceResp, tt.serviceErr
				},
			}

			h := newTestHandler(t, emotion, &mockChatService{})
			rec := serve(h, http.MethodPost, "/api/hume", tt.body)

			assert.Equal(t, tt.wantCalled, called)
			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			if tt.wantError != "" {
				assert.Equal(t, tt.wantError, decodeError(t, rec))
				return
			}
			assert.Equal(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestForwardHumeMessage_FailureDoesNotLeakDetails(t *testing.T) {
	var logBuf bytes.Buffer

	emotion := &mockEmotionService{
		forwardMessageFn: func(context.Context, models.HumeMessageRequest) (json.RawMessage, error) {
			return nil, &adapter.UpstreamError{StatusCode: http.StatusUnauthorized, Body: []byte(`{"message":"invalid api key"}`)}
		},
	}

	h := newTestHandlerWithLogger(t, emotion, &mockChatService{}, bufferLogger(&logBuf))
	rec := serve(h, http.MethodPost, "/api/hume", `{"input":"hi","apiKey":"caller-secret-key"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to fetch from Hume AI API"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "invalid api key")

	logs := logBuf.String()
	assert.Contains(t, logs, `"upstream_status":401`)
	assert.Contains(t, logs, `"upstream_body":{"message":"invalid api key"}`)
	assert.NotContains(t, logs, "caller-secret-key")
}

func TestForwardHumeMessage_EachRequestReachesService(t *testing.T) {
	calls := 0
	emotion := &mockEmotionService{
		forwardMessageFn: func(context.Context, models.HumeMessageRequest) (json.RawMessage, error) {
			calls++
			return json.RawMessage(`{}`), nil
		},
	}

	h := newTestHandler(t, emotion, &mockChatService{})
	body := `{"input":"same","apiKey":"k"}`

	for range 3 {
		rec := serve(h, http.MethodPost, "/api/hume", body)
		require.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Equal(t, 3, calls)
}

func TestIssueHumeToken(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		serviceResp json.RawMessage
		serviceErr  error
		wantStatus  int
		wantBody    string
	}{
		{
			name:        "relays token body",
			serviceResp: json.RawMessage(`{"access_token":"abc","expires_in":1800}`),
			wantStatus:  http.StatusOK,
			wantBody:    `{"access_token":"abc","expires_in":1800}`,
		},
		{
			name:        "request body is ignored",
			body:        `not even json`,
			serviceResp: json.RawMessage(`{"access_token":"abc"}`),
			wantStatus:  http.StatusOK,
			wantBody:    `{"access_token":"abc"}`,
		},
		{
			name:       "error text is surfaced",
			serviceErr: errors.New("hume token request: upstream responded 401: Unauthorized"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"hume token request: upstream responded 401: Unauthorized"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			emotion := &mockEmotionService{
				issueTokenFn: func(context.Context) (json.RawMessage, error) {
					calls++
					return tt.serviceResp, tt.serviceErr
				},
			}

			h := newTestHandler(t, emotion, &mockChatService{})
			rec := serve(h, http.MethodPost, "/auth/token", tt.body)

			assert.Equal(t, 1, calls)
			require.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestIssueHumeToken_NotCached(t *testing.T) {
	calls := 0
	emotion := &mockEmotionService{
		issueTokenFn: func(context.Context) (json.RawMessage, error) {
			calls++
			return json.RawMessage(fmt.Sprintf(`{"access_token":"t%d"}`, calls)), nil
		},
	}

	h := newTestHandler(t, emotion, &mockChatService{})

	first := serve(h, http.MethodPost, "/auth/token", "")
	second := serve(h, http.MethodPost, "/auth/token", "")

	assert.Equal(t, 2, calls)
	assert.JSONEq(t, `{"access_token":"t1"}`, first.Body.String())
	assert.JSONEq(t, `{"access_token":"t2"}`, second.Body.String())
}

func TestForwardHumeMessage_BodyAtSizeLimit(t *testing.T) {
	calls := 0
	emotion := &mockEmotionService{
		forwardMessageFn: func(context.Context, models.HumeMessageRequest) (json.RawMessage, error) {
			calls++
			return json.RawMessage(`{}`), nil
		},
	}

	prefix, suffix := `{"input":"`, `"}`
	body := prefix + strings.Repeat("a", maxRequestBodySize-len(prefix)-len(suffix)) + suffix
	require.Len(t, body, maxRequestBodySize)

	h := newTestHandler(t, emotion, &mockChatService{})
	rec := serve(h, http.MethodPost, "/api/hume", body)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, calls)
}
