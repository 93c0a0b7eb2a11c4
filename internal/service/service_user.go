// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/rhymebook/internal/logger"
	"github.com/MKhiriev/rhymebook/internal/store"
	"github.com/MKhiriev/rhymebook/internal/validators"
	"github.com/MKhiriev/rhymebook/models"
)

type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	logger         *logger.Logger
}

func NewUserService(userRepository store.UserRepository, validator validators.Validator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validator,
		logger:         logger,
	}
}

func (s *userService) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	user, err := s.userRepository.FindUserByUsername(ctx, username)
	return user, s.mapError(ctx, "*userService.GetUserByUsername", err)
}

func (s *userService) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	return user, s.mapError(ctx, "*userService.GetUserByID", err)
}

// UpdateProfile stores the new username and about-me text of user.UserID.
func (s *userService) UpdateProfile(ctx context.Context, user models.User) (models.User, error) {
	if err := s.validator.Validate(ctx, user, validators.FieldUserID, validators.FieldUsername, validators.FieldAboutMe); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	updated, err := s.userRepository.UpdateProfile(ctx, user)
	if errors.Is(err, store.ErrUsernameAlreadyExists) {
		return models.User{}, fmt.Errorf("%w: %w", validators.ErrDuplicateIdentity, err)
	}
	return updated, s.mapError(ctx, "*userService.UpdateProfile", err)
}

// TouchLastSeen records the current time as the user's last activity.
func (s *userService) TouchLastSeen(ctx context.Context, userID int64) error {
	err := s.userRepository.TouchLastSeen(ctx, userID, time.Now().UTC())
	return s.mapError(ctx, "*userService.TouchLastSeen", err)
}

func (s *userService) mapError(ctx context.Context, funcName string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNoUserWasFound):
		return ErrUserNotFound
	default:
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("user store failure")
		return unavailable(err)
	}
}
