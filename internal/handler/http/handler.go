// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/rhymebook/internal/config"
	"github.com/MKhiriev/rhymebook/internal/forms"
	"github.com/MKhiriev/rhymebook/internal/logger"
	"github.com/MKhiriev/rhymebook/internal/service"
	"github.com/MKhiriev/rhymebook/internal/utils"
)

type Handler struct {
	services *service.Services
	forms    *forms.Forms
	views    *views

	requestTimeout time.Duration
	secureCookies  bool
	traceIDs       *utils.TraceIDs

	logger *logger.Logger
}

// NewHandler builds the form definitions over the services' uniqueness
// checker and rhyme service and parses the embedded templates.
func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		forms:          forms.NewForms(services.UniquenessChecker, services.RhymeService),
		views:          mustParseViews(),
		requestTimeout: cfg.RequestTimeout,
		secureCookies:  cfg.SecureCookies,
		traceIDs:       utils.NewTraceIDs(),
		logger:         logger,
	}
}
