// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

// Field-level error kinds. Each is recoverable by the user re-submitting
// corrected input and is rendered next to the offending field.
var (
	ErrMissingValue      = errors.New("this field is required")
	ErrLengthOutOfRange  = errors.New("length out of range")
	ErrMultiTokenValue   = errors.New("must be a single word")
	ErrInvalidEmail      = errors.New("invalid email address")
	ErrFieldMismatch     = errors.New("field must match")
	ErrDuplicateIdentity = errors.New("already taken, please use a different one")
	ErrUnknownWord       = errors.New("no rhymes known for this word")
)

// Errors returned by [Validator] implementations for programming mistakes.
var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
	ErrInvalidUserID   = errors.New("invalid user ID")
)

var fieldLevelErrors = []error{
	ErrMissingValue,
	ErrLengthOutOfRange,
	ErrMultiTokenValue,
	ErrInvalidEmail,
	ErrFieldMismatch,
	ErrDuplicateIdentity,
	ErrUnknownWord,
}

// IsFieldError reports whether err is (or wraps) one of the field-level
// error kinds. Anything else is a system failure and must not be rendered
// as a validation message.
func IsFieldError(err error) bool {
	for _, target := range fieldLevelErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
