// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the server-rendered web interface of rhymebook.
//
// Pages are html/template views embedded in the binary. Every submission is
// bound to a form definition from package forms and run through
// forms.Validate: invalid input re-renders the page with inline errors
// (422), a successful POST redirects (303), and a system failure escaping
// the validation pass is mapped to an error page through errorStatusMap.
//
// Sessions are signed tokens kept in an HttpOnly cookie. Tracing, logging,
// compression and timeouts are handled by middleware before requests reach
// the page handlers.
package http
