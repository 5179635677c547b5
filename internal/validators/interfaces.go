// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides input validation for the payloads accepted by
// the notes API.
//
// A Validator checks a value and may be restricted to a subset of its
// fields, so one validator serves operations that need different rules for
// the same model (creating a note checks every text field, deleting one only
// needs its id).
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
