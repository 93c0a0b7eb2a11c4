// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/rhymebook/internal/config"
	"github.com/MKhiriev/rhymebook/internal/logger"
)

// Storages groups the repositories handed to the service layer together
// with the clients they were built on.
type Storages struct {
	UserRepository  UserRepository
	PostRepository  PostRepository
	RhymeRepository RhymeRepository

	closers []func() error
}

// NewStorages connects PostgreSQL (running migrations), builds the DynamoDB
// client and, when a Redis URL is configured, the rhyme cache. An
// unreachable Redis is not fatal: lookups then go straight to DynamoDB.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	s := &Storages{
		UserRepository: NewUserRepository(db, log),
		PostRepository: NewPostRepository(db, log),
		closers:        []func() error{db.Close},
	}

	dynamo, err := NewDynamoDBClient(ctx, cfg.Rhymes, log)
	if err != nil {
		_ = s.Close()
		return nil, err
	}
	s.RhymeRepository = NewRhymeRepository(dynamo, cfg.Rhymes.Table, cfg.Rhymes.KeyAttribute, log)

	if cfg.Cache.RedisURL == "" {
		log.Info().Str("func", "NewStorages").Msg("rhyme cache disabled")
		return s, nil
	}

	redisClient, err := NewRedisClient(ctx, cfg.Cache, log)
	if err != nil {
		log.Warn().Err(err).Str("func", "NewStorages").Msg("redis unavailable, rhyme cache disabled")
		return s, nil
	}
	s.RhymeRepository = NewCachedRhymeRepository(s.RhymeRepository, redisClient, cfg.Cache.TTL, log)
	s.closers = append(s.closers, redisClient.Close)

	return s, nil
}

// Close releases every client in reverse order of creation.
func (s *Storages) Close() error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("closing storages: %w", errors.Join(errs...))
	}
	return nil
}
