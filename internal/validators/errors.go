// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnknownField   = errors.New("unknown field for validation")
	ErrInvalidMessage = errors.New("invalid message input")
)
