// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrNoCandidates is returned when the model response has no candidate
	// or the first candidate has no content part.
	ErrNoCandidates = errors.New("model response has no candidate text")
)
