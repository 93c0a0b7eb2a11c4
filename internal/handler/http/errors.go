// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrNoCurrentUser is returned when a page requiring a signed-in user
	// runs without one in its context.
	ErrNoCurrentUser = errors.New("no signed-in user in request context")

	// ErrUnknownView is returned when rendering a template that was not
	// parsed at startup.
	ErrUnknownView = errors.New("unknown view")
)
