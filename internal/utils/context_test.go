package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/rhymebook/models"
	"github.com/stretchr/testify/assert"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "userID", UserIDCtxKey.String())
	assert.Equal(t, "currentUser", CurrentUserCtxKey.String())
}

func TestGetUserIDFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		wantID int64
		wantOK bool
	}{
		{name: "present", ctx: context.WithValue(context.Background(), UserIDCtxKey, int64(42)), wantID: 42, wantOK: true},
		{name: "missing", ctx: context.Background()},
		{name: "wrong type", ctx: context.WithValue(context.Background(), UserIDCtxKey, "42")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := GetUserIDFromContext(tt.ctx)
			assert.Equal(t, tt.wantID, id)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestCurrentUser(t *testing.T) {
	_, ok := CurrentUserFromContext(context.Background())
	assert.False(t, ok)

	ctx := WithCurrentUser(context.Background(), models.User{UserID: 7, Username: "susan"})

	user, ok := CurrentUserFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "susan", user.Username)

	id, ok := GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(7), id)
}
