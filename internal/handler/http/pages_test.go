// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/rhymebook/internal/service"
	"github.com/MKhiriev/rhymebook/internal/validators"
	"github.com/MKhiriev/rhymebook/models"
)

func TestIndex_ListsPosts(t *testing.T) {
	s := newTestServices(t)
	s.posts.listPostsFn = func(_ context.Context, filter models.PostFilter) ([]models.Post, error) {
		assert.Zero(t, filter.UserID)
		return []models.Post{
			{PostID: 2, Body: "<b>second</b>", Username: "john", CreatedAt: time.Date(2026, 1, 2, 3, 4, 0, 0, time.UTC)},
			{PostID: 1, Body: "first", Username: "susan"},
		}, nil
	}
	h := newTestHandlerWith(t, s)

	rec := do(t, h, http.MethodGet, "/", nil, true)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Hi, susan!")
	assert.Contains(t, body, "&lt;b&gt;second&lt;/b&gt;")
	assert.Contains(t, body, "2026-01-02 03:04")
	assert.Less(t, strings.Index(body, "second"), strings.Index(body, "first"))
}

func TestIndex_Post(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCreate bool
		wantError  error
	}{
		{name: "valid post", body: "hello world", wantStatus: http.StatusSeeOther, wantCreate: true},
		{name: "empty post", body: "   ", wantStatus: http.StatusUnprocessableEntity, wantError: validators.ErrMissingValue},
		{name: "too long", body: strings.Repeat("é", 141), wantStatus: http.StatusUnprocessableEntity, wantError: validators.ErrLengthOutOfRange},
		{name: "exactly 140 runes", body: strings.Repeat("é", 140), wantStatus: http.StatusSeeOther, wantCreate: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServices(t)
			var created bool
			s.posts.createPostFn = func(_ context.Context, post models.Post) (models.Post, error) {
				created = true
				assert.Equal(t, testUser.UserID, post.UserID)
				assert.Equal(t, tt.body, post.Body)
				return post, nil
			}
			h := newTestHandlerWith(t, s)

			rec := do(t, h, http.MethodPost, "/index", url.Values{"post": {tt.body}}, true)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCreate, created)
			if tt.wantError != nil {
				assert.Contains(t, rec.Body.String(), tt.wantError.Error())
			}
		})
	}
}

func TestUserPage(t *testing.T) {
	t.Run("existing user with posts", func(t *testing.T) {
		s := newTestServices(t)
		s.posts.listPostsFn = func(_ context.Context, filter models.PostFilter) ([]models.Post, error) {
			assert.Equal(t, testUser.UserID, filter.UserID)
			return []models.Post{{Body: "only mine"}}, nil
		}
		h := newTestHandlerWith(t, s)

		rec := do(t, h, http.MethodGet, "/user/susan", nil, true)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "User: susan")
		assert.Contains(t, rec.Body.String(), "only mine")
		assert.Contains(t, rec.Body.String(), `href="/edit_profile"`)
	})

	t.Run("unknown user", func(t *testing.T) {
		h := newTestHandlerWith(t, newTestServices(t))

		rec := do(t, h, http.MethodGet, "/user/nobody", nil, true)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestEditProfile_GetPrefills(t *testing.T) {
	h := newTestHandlerWith(t, newTestServices(t))

	rec := do(t, h, http.MethodGet, "/edit_profile", nil, true)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `value="susan"`)
	assert.Contains(t, rec.Body.String(), ">hi</textarea>")
}

func TestEditProfile_Post(t *testing.T) {
	tests := []struct {
		name       string
		form       url.Values
		checkErr   error
		wantStatus int
		wantUpdate bool
	}{
		{
			name:       "keeping own username",
			form:       url.Values{"username": {"susan"}, "about_me": {"new bio"}},
			wantStatus: http.StatusSeeOther,
			wantUpdate: true,
		},
		{
			name:       "username taken by someone else",
			form:       url.Values{"username": {"john"}, "about_me": {""}},
			checkErr:   validators.ErrDuplicateIdentity,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "about me too long",
			form:       url.Values{"username": {"susan"}, "about_me": {strings.Repeat("a", 141)}},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "uniqueness store down",
			form:       url.Values{"username": {"john"}, "about_me": {""}},
			checkErr:   errors.Join(service.ErrServiceUnavailable, errors.New("conn reset")),
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServices(t)
			s.uniqueness.checkUsernameFn = func(_ context.Context, candidate, original string, excludeUserID int64) error {
				assert.Equal(t, testUser.Username, original)
				assert.Equal(t, testUser.UserID, excludeUserID)
				return tt.checkErr
			}
			var updated bool
			s.users.updateProfileFn = func(_ context.Context, user models.User) (models.User, error) {
				updated = true
				assert.Equal(t, testUser.UserID, user.UserID)
				assert.Equal(t, tt.form.Get("username"), user.Username)
				assert.Equal(t, tt.form.Get("about_me"), user.AboutMe)
				return user, nil
			}
			h := newTestHandlerWith(t, s)

			rec := do(t, h, http.MethodPost, "/edit_profile", tt.form, true)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantUpdate, updated)
			if rec.Code == http.StatusSeeOther {
				assert.Equal(t, "/edit_profile?saved=1", rec.Header().Get("Location"))
			}
		})
	}
}

func TestRhymes_Post(t *testing.T) {
	tests := []struct {
		name        string
		word        string
		lookupErr   error
		wantStatus  int
		wantLookups []string
		wantBody    []string
	}{
		{
			name:        "known word",
			word:        "cat",
			wantStatus:  http.StatusOK,
			wantLookups: []string{"cat"},
			wantBody:    []string{"<li>hat</li>", "<li>bat</li>"},
		},
		{
			name:        "unknown word is a field error",
			word:        "zzqq",
			wantStatus:  http.StatusUnprocessableEntity,
			wantLookups: []string{"zzqq"},
			wantBody:    []string{validators.ErrUnknownWord.Error()},
		},
		{
			name:       "two words never reach the store",
			word:       "rainy day",
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   []string{validators.ErrMultiTokenValue.Error()},
		},
		{
			name:       "oversized word never reaches the store",
			word:       strings.Repeat("a", 3000),
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   []string{validators.ErrLengthOutOfRange.Error()},
		},
		{
			name:       "blank word",
			word:       "  ",
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   []string{validators.ErrMissingValue.Error()},
		},
		{
			name:        "store failure is a 503 page",
			word:        "dog",
			lookupErr:   errors.Join(service.ErrServiceUnavailable, errors.New("ResourceNotFoundException")),
			wantStatus:  http.StatusServiceUnavailable,
			wantLookups: []string{"dog"},
			wantBody:    []string{"temporarily unavailable"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServices(t)
			if tt.lookupErr != nil {
				s.rhymes.lookupFn = func(context.Context, string) (models.RhymeRecord, error) {
					return models.RhymeRecord{}, tt.lookupErr
				}
			}
			h := newTestHandlerWith(t, s)

			rec := do(t, h, http.MethodPost, "/rhymes", url.Values{"word": {tt.word}}, true)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantLookups, s.rhymes.calls)
			for _, b := range tt.wantBody {
				assert.Contains(t, rec.Body.String(), b)
			}
		})
	}
}

func TestRhymes_GetRendersEmptyForm(t *testing.T) {
	s := newTestServices(t)
	h := newTestHandlerWith(t, s)

	rec := do(t, h, http.MethodGet, "/rhymes", nil, true)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `value="Find rhymes"`)
	assert.Empty(t, s.rhymes.calls)
}
