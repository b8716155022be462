// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for inbound relay requests.
//
// Validators work on the generic decoded JSON document (the result of
// json.Unmarshal into any) so that type mismatches, such as a numeric
// message, are reported as validation failures instead of decode errors.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally restricts
	// validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
