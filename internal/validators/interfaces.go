// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides abstractions for input validation and
// enforcement of business rules across the application.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - ValidationError: the first human readable violation, matched with
//     errors.Is(err, ErrValidation) at the HTTP boundary.
//   - Decoding helpers (DecodeDriverInput, ParseListParams, ParseDriverID)
//     that turn raw request parts into typed values and report malformed
//     input as a ValidationError.
//
// Rule checks are expressed as go-playground/validator struct tags on the
// models; this package translates the library's field errors into client
// messages.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
