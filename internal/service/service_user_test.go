package service

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/rhymebook/internal/logger"
	"github.com/MKhiriev/rhymebook/internal/mock"
	"github.com/MKhiriev/rhymebook/internal/store"
	"github.com/MKhiriev/rhymebook/internal/validators"
	"github.com/MKhiriev/rhymebook/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestUserSvc(t *testing.T) (UserService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	return NewUserService(repo, validators.NewModelValidator(), logger.Nop()), repo
}

func TestUserService_GetUser(t *testing.T) {
	svc, repo := newTestUserSvc(t)
	ctx := context.Background()

	repo.EXPECT().FindUserByUsername(gomock.Any(), "susan").Return(models.User{UserID: 1, Username: "susan"}, nil)
	user, err := svc.GetUserByUsername(ctx, "susan")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)

	repo.EXPECT().FindUserByUsername(gomock.Any(), "ghost").Return(models.User{}, store.ErrNoUserWasFound)
	_, err = svc.GetUserByUsername(ctx, "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)

	repo.EXPECT().FindUserByID(gomock.Any(), int64(2)).Return(models.User{}, store.ErrExecutingQuery)
	_, err = svc.GetUserByID(ctx, 2)
	assert.ErrorIs(t, err, ErrServiceUnavailable)
}

func TestUserService_UpdateProfile(t *testing.T) {
	svc, repo := newTestUserSvc(t)
	ctx := context.Background()
	user := models.User{UserID: 1, Username: "john", AboutMe: "hi"}

	repo.EXPECT().UpdateProfile(gomock.Any(), user).Return(user, nil)
	updated, err := svc.UpdateProfile(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, "john", updated.Username)

	repo.EXPECT().UpdateProfile(gomock.Any(), user).Return(models.User{}, store.ErrUsernameAlreadyExists)
	_, err = svc.UpdateProfile(ctx, user)
	assert.ErrorIs(t, err, validators.ErrDuplicateIdentity)

	_, err = svc.UpdateProfile(ctx, models.User{UserID: 1, Username: "john", AboutMe: strings.Repeat("a", 141)})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.UpdateProfile(ctx, models.User{Username: "john"})
	assert.ErrorIs(t, err, validators.ErrInvalidUserID)
}

func TestUserService_TouchLastSeen(t *testing.T) {
	svc, repo := newTestUserSvc(t)

	repo.EXPECT().TouchLastSeen(gomock.Any(), int64(1), gomock.Any()).Return(nil)
	assert.NoError(t, svc.TouchLastSeen(context.Background(), 1))

	repo.EXPECT().TouchLastSeen(gomock.Any(), int64(2), gomock.Any()).Return(store.ErrNoUserWasFound)
	assert.ErrorIs(t, svc.TouchLastSeen(context.Background(), 2), ErrUserNotFound)
}
