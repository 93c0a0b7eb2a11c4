// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the application logic between the web layer and the
// stores: uniqueness checks, rhyme lookups, authentication, profiles and
// posts. Store failures surface as [ErrServiceUnavailable].
package service

import (
	"context"

	"github.com/MKhiriev/rhymebook/models"
)

// UniquenessChecker decides whether a user identity is free to use.
type UniquenessChecker interface {
	// CheckUsername returns nil when candidate equals original (without
	// touching the store) or when no other user owns candidate.
	// Returns validators.ErrDuplicateIdentity when taken and
	// ErrServiceUnavailable when the store cannot answer.
	CheckUsername(ctx context.Context, candidate, original string, excludeUserID int64) error

	// CheckEmail applies the same rules to an e-mail at registration.
	CheckEmail(ctx context.Context, email string) error
}

// RhymeService resolves a word to its rhymes.
type RhymeService interface {
	// Lookup normalizes word and reads its record. A missing record yields
	// validators.ErrUnknownWord; store failures ErrServiceUnavailable.
	Lookup(ctx context.Context, word string) (models.RhymeRecord, error)
}

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User, password string) (models.User, error)
	Login(ctx context.Context, username, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type UserService interface {
	GetUserByUsername(ctx context.Context, username string) (models.User, error)
	GetUserByID(ctx context.Context, userID int64) (models.User, error)
	UpdateProfile(ctx context.Context, user models.User) (models.User, error)
	TouchLastSeen(ctx context.Context, userID int64) error
}

type PostService interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
