// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Post is a short message published by a user.
type Post struct {
	PostID int64  `json:"post_id"`
	Body   string `json:"body"`
	UserID int64  `json:"-"`

	// Username of the author. Filled by list queries that join users.
	Username string `json:"username"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}

// PostFilter narrows a post listing. Zero values mean "no restriction",
// except Limit which falls back to a store default.
type PostFilter struct {
	UserID int64
	Limit  uint64
}
