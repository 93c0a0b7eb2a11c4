// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/rhymebook/internal/logger"
	"github.com/MKhiriev/rhymebook/internal/store"
	"github.com/MKhiriev/rhymebook/internal/validators"
	"github.com/MKhiriev/rhymebook/models"
)

type rhymeService struct {
	rhymeRepository store.RhymeRepository
	timeout         time.Duration
	logger          *logger.Logger
}

// NewRhymeService constructs a RhymeService whose lookups are bounded by
// timeout.
func NewRhymeService(rhymeRepository store.RhymeRepository, timeout time.Duration, logger *logger.Logger) RhymeService {
	return &rhymeService{
		rhymeRepository: rhymeRepository,
		timeout:         timeout,
		logger:          logger,
	}
}

func (r *rhymeService) Lookup(ctx context.Context, word string) (models.RhymeRecord, error) {
	key := validators.NormalizeWord(word)
	if key == "" {
		return models.RhymeRecord{}, validators.ErrMissingValue
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	record, err := r.rhymeRepository.GetRhymes(ctx, key)
	switch {
	case err == nil:
		return record, nil
	case errors.Is(err, store.ErrRhymeNotFound):
		return models.RhymeRecord{}, validators.ErrUnknownWord
	default:
		logger.FromContext(ctx).Err(err).Str("func", "*rhymeService.Lookup").Str("word", key).Msg("rhyme lookup failed")
		return models.RhymeRecord{}, unavailable(err)
	}
}
