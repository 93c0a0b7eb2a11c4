// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/rhymebook/models"
)

const userColumns = `user_id, username, email, password_hash, about_me, last_seen, created_at`

const (
	createUser = `INSERT INTO users (username, email, password_hash, about_me)
    VALUES ($1, $2, $3, $4)
    RETURNING ` + userColumns + `;`

	findUserByUsername = `SELECT ` + userColumns + `
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE user_id = $1;`

	updateProfile = `UPDATE users
    SET username = $1, about_me = $2
    WHERE user_id = $3
    RETURNING ` + userColumns + `;`

	touchLastSeen = `UPDATE users SET last_seen = $1 WHERE user_id = $2;`

	createPost = `INSERT INTO posts (body, user_id)
    VALUES ($1, $2)
    RETURNING post_id, body, user_id, created_at;`
)

// DefaultPostsLimit caps a post listing when the filter sets no limit.
const DefaultPostsLimit uint64 = 50

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildCountUsersQuery builds
//
//	SELECT COUNT(1) FROM users WHERE <column> = $1 [AND user_id <> $2]
//
// The exclusion is added only for a positive excludeUserID.
func buildCountUsersQuery(column, value string, excludeUserID int64) (string, []any, error) {
	builder := psql.Select("COUNT(1)").
		From(models.User{}.TableName()).
		Where(sq.Eq{column: value})

	if excludeUserID > 0 {
		builder = builder.Where(sq.NotEq{"user_id": excludeUserID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildListPostsQuery selects posts newest first joined with their authors.
func buildListPostsQuery(filter models.PostFilter) (string, []any, error) {
	limit := filter.Limit
	if limit == 0 {
		limit = DefaultPostsLimit
	}

	builder := psql.Select("p.post_id", "p.body", "p.user_id", "u.username", "p.created_at").
		From(models.Post{}.TableName() + " p").
		Join(models.User{}.TableName() + " u ON u.user_id = p.user_id").
		OrderBy("p.created_at DESC", "p.post_id DESC").
		Limit(limit)

	if filter.UserID > 0 {
		builder = builder.Where(sq.Eq{"p.user_id": filter.UserID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
