// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/rhymebook/internal/logger"
	"github.com/MKhiriev/rhymebook/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts a user and returns it with server-assigned columns.
//
// A unique_violation (23505) is mapped to [ErrEmailAlreadyExists] or
// [ErrUsernameAlreadyExists] depending on the violated constraint.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Username, user.Email, user.PasswordHash, user.AboutMe)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Bool("retryable", r.db.retryable(err)).Msg("error inserting user")
		return models.User{}, r.mapWriteError(err)
	}

	created, err := scanUser(row)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error scanning created user")
		return models.User{}, r.mapWriteError(err)
	}

	return created, nil
}

// FindUserByUsername returns [ErrNoUserWasFound] when nobody owns username.
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByUsername", findUserByUsername, username)
}

// FindUserByID returns [ErrNoUserWasFound] for an unknown id.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", findUserByID, userID)
}

func (r *userRepository) findOne(ctx context.Context, funcName, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := scanUser(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", funcName).Bool("retryable", r.db.retryable(err)).Msg("error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// UpdateProfile stores Username and AboutMe of user.UserID.
func (r *userRepository) UpdateProfile(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	updated, err := scanUser(r.db.QueryRowContext(ctx, updateProfile, user.Username, user.AboutMe, user.UserID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Msg("error updating profile")
		return models.User{}, r.mapWriteError(err)
	}

	return updated, nil
}

// TouchLastSeen sets last_seen of userID to at.
func (r *userRepository) TouchLastSeen(ctx context.Context, userID int64, at time.Time) error {
	result, err := r.db.ExecContext(ctx, touchLastSeen, at, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.TouchLastSeen").Msg("error updating last seen")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

func (r *userRepository) CountByUsername(ctx context.Context, username string, excludeUserID int64) (int, error) {
	return r.count(ctx, "username", username, excludeUserID)
}

func (r *userRepository) CountByEmail(ctx context.Context, email string) (int, error) {
	return r.count(ctx, "email", email, 0)
}

func (r *userRepository) count(ctx context.Context, column, value string, excludeUserID int64) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountUsersQuery(column, value, excludeUserID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.count").Msg("error building count query")
		return 0, err
	}

	var n int
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		log.Err(err).Str("func", "*userRepository.count").Str("column", column).
			Bool("retryable", r.db.retryable(err)).Msg("error counting users")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return n, nil
}

func (r *userRepository) mapWriteError(err error) error {
	code, constraint := postgresError(err)
	if code == pgerrcode.UniqueViolation {
		if strings.Contains(constraint, "email") {
			return ErrEmailAlreadyExists
		}
		return ErrUsernameAlreadyExists
	}
	return fmt.Errorf("unexpected DB error: %w", err)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.UserID, &u.Username, &u.Email, &u.PasswordHash, &u.AboutMe, &u.LastSeen, &u.CreatedAt)
	return u, err
}
