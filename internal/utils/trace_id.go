// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"regexp"

	"github.com/google/uuid"
)

// maxTraceIDLength caps an incoming trace id before it reaches the logs.
const maxTraceIDLength = 128

var traceIDPattern = regexp.MustCompile(`^[A-Za-z0-9._:-]+$`)

// TraceIDs issues request trace ids.
type TraceIDs struct{}

func NewTraceIDs() *TraceIDs {
	return &TraceIDs{}
}

// New returns a UUIDv7, falling back to a random UUIDv4.
func (t *TraceIDs) New() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// FromHeader keeps a caller supplied id when it is short and made of
// printable token characters, and issues a fresh one otherwise.
func (t *TraceIDs) FromHeader(value string) string {
	if value == "" || len(value) > maxTraceIDLength || !traceIDPattern.MatchString(value) {
		return t.New()
	}

	return value
}
