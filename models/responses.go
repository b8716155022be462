// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the body written on every relay failure.
type ErrorResponse struct {
	Error string `json:"error"`
}
