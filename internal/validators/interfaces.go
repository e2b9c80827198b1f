// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks decoded API payloads before they reach callers.
//
// Validator is a generic interface so the adapter does not depend on how the
// rules are expressed; the shipped implementation reads `validate` struct
// tags through go-playground/validator.
package validators

import "context"

// Validator defines a generic validation interface for decoded values.
type Validator interface {

	// Validate checks the provided value, a struct or a slice of structs,
	// against its rules.
	Validate(context.Context, any) error
}
