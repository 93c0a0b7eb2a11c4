// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/rhymebook/internal/config"
	"github.com/MKhiriev/rhymebook/internal/logger"
	"github.com/MKhiriev/rhymebook/internal/store"
	"github.com/MKhiriev/rhymebook/internal/validators"
)

type Services struct {
	AuthService       AuthService
	UserService       UserService
	PostService       PostService
	RhymeService      RhymeService
	UniquenessChecker UniquenessChecker
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	validator := validators.NewModelValidator()

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:       NewAuthService(storages.UserRepository, validator, cfg.App, logger),
		UserService:       NewUserService(storages.UserRepository, validator, logger),
		PostService:       NewPostService(storages.PostRepository, validator, logger),
		RhymeService:      NewRhymeService(storages.RhymeRepository, cfg.Storage.Rhymes.Timeout, logger),
		UniquenessChecker: NewUniquenessChecker(storages.UserRepository, cfg.Storage.DB.QueryTimeout, logger),
		AppInfoService:    appInfo,
	}, nil
}
