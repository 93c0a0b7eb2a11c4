// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/rhymebook/internal/service"
	"github.com/MKhiriev/rhymebook/internal/store"
	"github.com/MKhiriev/rhymebook/internal/validators"
)

// errorStatusMap is consulted in order; the first matching entry wins, so
// more specific kinds are listed before the store errors they may wrap.
var errorStatusMap = []struct {
	err    error
	status int
}{
	{service.ErrServiceUnavailable, http.StatusServiceUnavailable},
	{service.ErrUserNotFound, http.StatusNotFound},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError},
	{validators.ErrDuplicateIdentity, http.StatusConflict},
	{ErrNoCurrentUser, http.StatusUnauthorized},

	{store.ErrNoUserWasFound, http.StatusNotFound},
	{store.ErrKeyValueStore, http.StatusServiceUnavailable},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
