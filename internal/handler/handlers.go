// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler assembles the inbound transport handlers of rhymebook.
package handler

import (
	"github.com/MKhiriev/rhymebook/internal/config"
	"github.com/MKhiriev/rhymebook/internal/handler/http"
	"github.com/MKhiriev/rhymebook/internal/logger"
	"github.com/MKhiriev/rhymebook/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}
	if services == nil {
		return nil, errNoServices
	}

	return &Handlers{HTTP: http.NewHandler(services, cfg, logger)}, nil
}
