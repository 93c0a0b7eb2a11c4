package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/rhymebook/internal/logger"
	"github.com/MKhiriev/rhymebook/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPostRepo(t *testing.T) (*postRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &postRepository{db: db, logger: logger.Nop()}, mock
}

func TestCreatePost(t *testing.T) {
	repo, mock := newTestPostRepo(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO posts").
		WithArgs("hello", int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"post_id", "body", "user_id", "created_at"}).AddRow(10, "hello", 3, now))

	post, err := repo.CreatePost(context.Background(), models.Post{Body: "hello", UserID: 3, Username: "susan"})
	require.NoError(t, err)
	assert.Equal(t, int64(10), post.PostID)
	assert.Equal(t, "susan", post.Username)
	assert.Equal(t, now, post.CreatedAt)
}

func TestCreatePost_Error(t *testing.T) {
	repo, mock := newTestPostRepo(t)
	mock.ExpectQuery("INSERT INTO posts").WillReturnError(errors.New("boom"))

	_, err := repo.CreatePost(context.Background(), models.Post{Body: "hello", UserID: 3})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListPosts(t *testing.T) {
	repo, mock := newTestPostRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM posts p JOIN users u ON u.user_id = p.user_id WHERE p.user_id = $1")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"post_id", "body", "user_id", "username", "created_at"}).
			AddRow(2, "second", 3, "susan", now).
			AddRow(1, "first", 3, "susan", now.Add(-time.Minute)))

	posts, err := repo.ListPosts(context.Background(), models.PostFilter{UserID: 3, Limit: 5})
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "second", posts[0].Body)
	assert.Equal(t, "susan", posts[1].Username)
}

func TestListPosts_Empty(t *testing.T) {
	repo, mock := newTestPostRepo(t)
	mock.ExpectQuery("FROM posts p").
		WillReturnRows(sqlmock.NewRows([]string{"post_id", "body", "user_id", "username", "created_at"}))

	posts, err := repo.ListPosts(context.Background(), models.PostFilter{})
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestListPosts_ScanError(t *testing.T) {
	repo, mock := newTestPostRepo(t)
	mock.ExpectQuery("FROM posts p").
		WillReturnRows(sqlmock.NewRows([]string{"post_id"}).AddRow(1))

	_, err := repo.ListPosts(context.Background(), models.PostFilter{})
	assert.ErrorIs(t, err, ErrScanningRows)
}
