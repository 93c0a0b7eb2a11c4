// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/rhymebook/internal/config"
	"github.com/MKhiriev/rhymebook/internal/logger"
	"github.com/MKhiriev/rhymebook/models"
	"github.com/redis/go-redis/v9"
)

const rhymeCacheKeyPrefix = "rhyme:"

// NewRedisClient parses cfg.RedisURL and pings the server.
func NewRedisClient(ctx context.Context, cfg config.Cache, log *logger.Logger) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err = client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}
	log.Info().Str("func", "NewRedisClient").Str("addr", opts.Addr).Msg("connected to redis")

	return client, nil
}

// cachedRhymeRepository is a read-through cache in front of another
// [RhymeRepository]. Only found records are cached. Redis failures are
// logged and the lookup falls through to the wrapped repository.
type cachedRhymeRepository struct {
	next   RhymeRepository
	client *redis.Client
	ttl    time.Duration
	logger *logger.Logger
}

// NewCachedRhymeRepository wraps next with a Redis cache of the given TTL.
func NewCachedRhymeRepository(next RhymeRepository, client *redis.Client, ttl time.Duration, logger *logger.Logger) RhymeRepository {
	logger.Debug().Dur("ttl", ttl).Msg("creating cached rhyme repository")
	return &cachedRhymeRepository{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *cachedRhymeRepository) GetRhymes(ctx context.Context, word string) (models.RhymeRecord, error) {
	log := logger.FromContext(ctx)
	key := rhymeCacheKeyPrefix + word

	cached, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var record models.RhymeRecord
		if err = json.Unmarshal(cached, &record); err == nil {
			return record, nil
		}
		log.Warn().Err(err).Str("func", "*cachedRhymeRepository.GetRhymes").Str("key", key).Msg("dropping undecodable cache entry")
		c.client.Del(ctx, key)
	case !errors.Is(err, redis.Nil):
		log.Warn().Err(err).Str("func", "*cachedRhymeRepository.GetRhymes").Msg("cache read failed")
	}

	record, err := c.next.GetRhymes(ctx, word)
	if err != nil {
		return models.RhymeRecord{}, err
	}

	payload, err := json.Marshal(record)
	if err == nil {
		err = c.client.Set(ctx, key, payload, c.ttl).Err()
	}
	if err != nil {
		log.Warn().Err(err).Str("func", "*cachedRhymeRepository.GetRhymes").Msg("cache write failed")
	}

	return record, nil
}
