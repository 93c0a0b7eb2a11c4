// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared by the web and service layers:
// typed context keys, password hashing, session token signing, JSON
// responses and identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/rhymebook/models"
)

// contextKey is a private type for context keys so that values set here
// cannot collide with string keys of other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey holds the authenticated user's id (int64).
	UserIDCtxKey = contextKey("userID")

	// CurrentUserCtxKey holds the authenticated models.User.
	CurrentUserCtxKey = contextKey("currentUser")
)

// GetUserIDFromContext returns the authenticated user's id and whether one
// is present with the expected type.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// WithCurrentUser stores user and its id in ctx.
func WithCurrentUser(ctx context.Context, user models.User) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, user.UserID)
	return context.WithValue(ctx, CurrentUserCtxKey, user)
}

// CurrentUserFromContext returns the user stored by WithCurrentUser.
func CurrentUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(CurrentUserCtxKey).(models.User)
	return user, ok
}
