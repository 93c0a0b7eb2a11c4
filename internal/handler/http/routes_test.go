// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit_Routes(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		path         string
		signedIn     bool
		wantStatus   int
		wantLocation string
	}{
		{name: "health", method: http.MethodGet, path: "/healthz", wantStatus: http.StatusOK},
		{name: "version", method: http.MethodGet, path: "/api/version", wantStatus: http.StatusOK},
		{name: "login page", method: http.MethodGet, path: "/login", wantStatus: http.StatusOK},
		{name: "register page", method: http.MethodGet, path: "/register", wantStatus: http.StatusOK},
		{name: "index requires login", method: http.MethodGet, path: "/", wantStatus: http.StatusSeeOther, wantLocation: "/login?next=%2F"},
		{name: "rhymes requires login", method: http.MethodGet, path: "/rhymes", wantStatus: http.StatusSeeOther, wantLocation: "/login?next=%2Frhymes"},
		{name: "index signed in", method: http.MethodGet, path: "/index", signedIn: true, wantStatus: http.StatusOK},
		{name: "logout by GET is hidden", method: http.MethodGet, path: "/logout", signedIn: true, wantStatus: http.StatusNotFound},
		{name: "unsupported method is hidden", method: http.MethodDelete, path: "/login", wantStatus: http.StatusNotFound},
		{name: "unknown path", method: http.MethodGet, path: "/nope", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandlerWith(t, newTestServices(t))

			rec := do(t, h, tt.method, tt.path, nil, tt.signedIn)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
			}
			assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
		})
	}
}

func TestInit_Healthz(t *testing.T) {
	h := newTestHandlerWith(t, newTestServices(t))

	rec := do(t, h, http.MethodGet, "/healthz", nil, false)

	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestInit_RecoversFromPanic(t *testing.T) {
	h := newTestHandlerWith(t, newTestServices(t))
	h.services.PostService = nil

	req := httptest.NewRequest(http.MethodGet, "/index", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: testSessionToken})
	rec := httptest.NewRecorder()

	assert.NotPanics(t, func() { h.Init().ServeHTTP(rec, req) })
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
