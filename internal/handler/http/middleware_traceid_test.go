// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/rhymebook/internal/logger"
	"github.com/MKhiriev/rhymebook/internal/utils"
)

func newMiddlewareHandler(buf *bytes.Buffer) *Handler {
	l := logger.Nop()
	if buf != nil {
		l = &logger.Logger{Logger: zerolog.New(buf)}
	}
	return &Handler{logger: l, traceIDs: utils.NewTraceIDs()}
}

func TestWithTraceID(t *testing.T) {
	t.Run("incoming id is kept", func(t *testing.T) {
		var buf bytes.Buffer
		h := newMiddlewareHandler(&buf)
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger.FromRequest(r).Info().Msg("inside")
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(traceIDHeader, "trace-123")
		rec := httptest.NewRecorder()
		h.withTraceID(next).ServeHTTP(rec, req)

		assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
		assert.Contains(t, buf.String(), `"trace_id":"trace-123"`)
	})

	t.Run("missing id is generated", func(t *testing.T) {
		h := newMiddlewareHandler(nil)

		rec := httptest.NewRecorder()
		h.withTraceID(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).
			ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		id, err := uuid.Parse(rec.Header().Get(traceIDHeader))
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), id.Version())
	})

	t.Run("malformed id is replaced", func(t *testing.T) {
		var buf bytes.Buffer
		h := newMiddlewareHandler(&buf)
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger.FromRequest(r).Info().Msg("inside")
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(traceIDHeader, `forged" "level":"error`)
		rec := httptest.NewRecorder()
		h.withTraceID(next).ServeHTTP(rec, req)

		id, err := uuid.Parse(rec.Header().Get(traceIDHeader))
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), id.Version())
		assert.NotContains(t, buf.String(), "forged")
	})
}
