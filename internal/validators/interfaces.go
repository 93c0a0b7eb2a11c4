// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides the field rules used by form definitions and
// a field-scoped validator for domain models.
//
// Core concepts:
//   - Rule: a single check on one raw field value. Rules are composed into
//     ordered chains; a chain stops at its first failing rule.
//   - Validator: validates whole domain models, optionally restricted to
//     named fields. Services use it to guard writes that do not come
//     through a form.
//
// Every rule failure wraps one of the field-level error kinds declared in
// errors.go so callers can tell user mistakes from system failures with
// [IsFieldError].
package validators

import "context"

// Rule checks a single raw field value and returns nil or a field-level error.
type Rule func(value string) error

// Validator defines a generic validation interface for domain models.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
