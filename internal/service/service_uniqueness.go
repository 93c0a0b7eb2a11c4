// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/rhymebook/internal/logger"
	"github.com/MKhiriev/rhymebook/internal/store"
	"github.com/MKhiriev/rhymebook/internal/validators"
)

type uniquenessChecker struct {
	userRepository store.UserRepository
	timeout        time.Duration
	logger         *logger.Logger
}

// NewUniquenessChecker constructs a UniquenessChecker issuing at most one
// count query per call, bounded by timeout.
func NewUniquenessChecker(userRepository store.UserRepository, timeout time.Duration, logger *logger.Logger) UniquenessChecker {
	return &uniquenessChecker{
		userRepository: userRepository,
		timeout:        timeout,
		logger:         logger,
	}
}

func (u *uniquenessChecker) CheckUsername(ctx context.Context, candidate, original string, excludeUserID int64) error {
	if candidate == original {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	n, err := u.userRepository.CountByUsername(ctx, candidate, excludeUserID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*uniquenessChecker.CheckUsername").Msg("username check failed")
		return unavailable(err)
	}
	if n > 0 {
		return validators.ErrDuplicateIdentity
	}

	return nil
}

func (u *uniquenessChecker) CheckEmail(ctx context.Context, email string) error {
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	n, err := u.userRepository.CountByEmail(ctx, email)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*uniquenessChecker.CheckEmail").Msg("email check failed")
		return unavailable(err)
	}
	if n > 0 {
		return validators.ErrDuplicateIdentity
	}

	return nil
}
