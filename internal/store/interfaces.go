// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/rhymebook/models"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts in the relational store.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	UpdateProfile(ctx context.Context, user models.User) (models.User, error)
	TouchLastSeen(ctx context.Context, userID int64, at time.Time) error

	// CountByUsername counts users owning username. A positive excludeUserID
	// leaves that user out of the count.
	CountByUsername(ctx context.Context, username string, excludeUserID int64) (int, error)
	CountByEmail(ctx context.Context, email string) (int, error)
}

// PostRepository persists posts.
type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	ListPosts(ctx context.Context, filter models.PostFilter) ([]models.Post, error)
}

// RhymeRepository reads rhyme records by their normalized word key.
// A missing item yields [ErrRhymeNotFound]; every other failure wraps
// [ErrKeyValueStore].
type RhymeRepository interface {
	GetRhymes(ctx context.Context, word string) (models.RhymeRecord, error)
}

// DynamoDBItemGetter is the subset of *dynamodb.Client used by the rhyme
// repository.
type DynamoDBItemGetter interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
