// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// applyDefaults fills fields that no configuration source has set.
// Non-positive durations count as unset.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration <= 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.Storage.DB.QueryTimeout <= 0 {
		cfg.Storage.DB.QueryTimeout = DefaultQueryTimeout
	}
	if cfg.Storage.Rhymes.Table == "" {
		cfg.Storage.Rhymes.Table = DefaultRhymesTable
	}
	if cfg.Storage.Rhymes.KeyAttribute == "" {
		cfg.Storage.Rhymes.KeyAttribute = DefaultKeyAttribute
	}
	if cfg.Storage.Rhymes.Region == "" {
		cfg.Storage.Rhymes.Region = DefaultRhymesRegion
	}
	if cfg.Storage.Rhymes.Timeout <= 0 {
		cfg.Storage.Rhymes.Timeout = DefaultLookupTimeout
	}
	if cfg.Storage.Cache.TTL <= 0 {
		cfg.Storage.Cache.TTL = DefaultCacheTTL
	}
	if cfg.Server.RequestTimeout <= 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
}

// validate checks that the final merged [StructuredConfig] carries everything
// the server needs at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.Rhymes.Table == "" || cfg.Storage.Rhymes.KeyAttribute == "" {
		return fmt.Errorf("%w: rhyme table is not configured", ErrInvalidStorageConfigs)
	}
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty HTTP address", ErrInvalidServerConfigs)
	}
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: empty token sign key", ErrInvalidAppConfigs)
	}

	return nil
}
