// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const FieldMessage = "message"

// chatRequestSchema accepts an object whose message is a non-empty string.
// Everything else about the body is left unchecked.
const chatRequestSchema = `{
	"type": "object",
	"required": ["message"],
	"properties": {
		"message": { "type": "string", "minLength": 1 }
	}
}`

type ChatRequestValidator struct {
	schema *jsonschema.Schema
}

// NewChatRequestValidator compiles the chat request schema.
func NewChatRequestValidator() (Validator, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	if err := compiler.AddResource("chat_request.json", strings.NewReader(chatRequestSchema)); err != nil {
		return nil, fmt.Errorf("failed to add chat request schema: %w", err)
	}

	schema, err := compiler.Compile("chat_request.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat request schema: %w", err)
	}

	return &ChatRequestValidator{schema: schema}, nil
}

// Validate checks doc, a value produced by json.Unmarshal into any. The only
// field that can be named is [FieldMessage].
func (v *ChatRequestValidator) Validate(_ context.Context, doc any, fields ...string) error {
	for _, field := range fields {
		if field != FieldMessage {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	if err := v.schema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMessage, err)
	}

	return nil
}
