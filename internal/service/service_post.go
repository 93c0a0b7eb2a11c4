// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/rhymebook/internal/logger"
	"github.com/MKhiriev/rhymebook/internal/store"
	"github.com/MKhiriev/rhymebook/internal/validators"
	"github.com/MKhiriev/rhymebook/models"
)

type postService struct {
	postRepository store.PostRepository
	validator      validators.Validator
	logger         *logger.Logger
}

func NewPostService(postRepository store.PostRepository, validator validators.Validator, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		validator:      validator,
		logger:         logger,
	}
}

func (s *postService) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	if err := s.validator.Validate(ctx, post); err != nil {
		return models.Post{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := s.postRepository.CreatePost(ctx, post)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*postService.CreatePost").Msg("error saving post")
		return models.Post{}, unavailable(err)
	}

	return created, nil
}

func (s *postService) ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error) {
	posts, err := s.postRepository.ListPosts(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*postService.ListPosts").Msg("error listing posts")
		return nil, unavailable(err)
	}

	return posts, nil
}
