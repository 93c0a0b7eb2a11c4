// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"
)

// Required fails with [ErrMissingValue] when the value is empty or consists
// of whitespace only.
func Required() Rule {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return ErrMissingValue
		}
		return nil
	}
}

// Length fails with [ErrLengthOutOfRange] when the number of characters in
// value falls outside [min, max]. A negative max means "no upper bound".
// With min == 0 the empty value is accepted.
func Length(min, max int) Rule {
	return func(value string) error {
		n := utf8.RuneCountInString(value)
		if n < min || (max >= 0 && n > max) {
			return lengthError(min, max)
		}
		return nil
	}
}

func lengthError(min, max int) error {
	switch {
	case max < 0:
		return fmt.Errorf("%w: must be at least %d characters", ErrLengthOutOfRange, min)
	case min <= 0:
		return fmt.Errorf("%w: must be at most %d characters", ErrLengthOutOfRange, max)
	default:
		return fmt.Errorf("%w: must be between %d and %d characters", ErrLengthOutOfRange, min, max)
	}
}

// SingleToken fails with [ErrMultiTokenValue] when the normalized value
// splits into more than one whitespace-separated segment.
func SingleToken() Rule {
	return func(value string) error {
		if len(strings.Fields(NormalizeWord(value))) > 1 {
			return ErrMultiTokenValue
		}
		return nil
	}
}

// Email fails with [ErrInvalidEmail] unless value is a bare address
// such as "user@example.com" (no display name, no angle brackets).
func Email() Rule {
	return func(value string) error {
		value = strings.TrimSpace(value)
		addr, err := mail.ParseAddress(value)
		if err != nil || addr.Address != value || !strings.Contains(addr.Address[strings.LastIndex(addr.Address, "@")+1:], ".") {
			return ErrInvalidEmail
		}
		return nil
	}
}

// NormalizeWord lower-cases and trims a word so that equivalent inputs map
// to the same lookup key.
func NormalizeWord(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// Run applies rules in order and returns the first failure.
func Run(value string, rules ...Rule) error {
	for _, rule := range rules {
		if err := rule(value); err != nil {
			return err
		}
	}
	return nil
}
