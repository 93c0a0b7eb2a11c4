// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents a registered account.
// Username and Email are unique across all users.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Username is the public, unique handle of the user.
	// It can be changed on the profile edit page as long as it stays unique.
	Username string `json:"username"`

	// Email is the unique contact address given at registration.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// AboutMe is an optional short self description (up to 140 characters).
	AboutMe string `json:"about_me"`

	// LastSeen is refreshed on every authenticated request.
	LastSeen time.Time `json:"last_seen"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
