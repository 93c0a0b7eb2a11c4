// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// ErrNoHTTPHandler is returned by NewServer when the handlers carry no
	// web handler to serve.
	ErrNoHTTPHandler = errors.New("server: no HTTP handler to serve")

	// ErrNoListenAddress is returned by NewServer when the configuration has
	// no HTTP address.
	ErrNoListenAddress = errors.New("server: empty HTTP listen address")
)
