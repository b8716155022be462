// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "encoding/json"

const redacted = "[REDACTED]"

// Secret is a credential string. Its String and JSON forms are redacted so
// that logging a config (or any struct embedding it) never prints the value.
// Use Reveal to obtain the raw credential when building an outbound request.
type Secret string

// Reveal returns the raw credential.
func (s Secret) Reveal() string {
	return string(s)
}

// String implements fmt.Stringer.
func (s Secret) String() string {
	if s == "" {
		return ""
	}
	return redacted
}

// MarshalJSON implements json.Marshaler; zerolog's Any goes through it.
func (s Secret) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalText implements encoding.TextUnmarshaler so that both the env
// parser and encoding/json populate the raw value.
func (s *Secret) UnmarshalText(text []byte) error {
	*s = Secret(text)
	return nil
}
