// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/rhymebook/internal/forms"
	"github.com/MKhiriev/rhymebook/internal/logger"
	"github.com/MKhiriev/rhymebook/internal/utils"
	"github.com/MKhiriev/rhymebook/internal/validators"
	"github.com/MKhiriev/rhymebook/models"
)

// currentUser returns the signed-in user or renders 401 when requireLogin
// was bypassed.
func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	user, ok := utils.CurrentUserFromContext(r.Context())
	if !ok {
		h.renderError(w, r, ErrNoCurrentUser)
	}
	return user, ok
}

// parsePostForm binds the submitted body into a fresh instance of def.
func (h *Handler) parsePostForm(w http.ResponseWriter, r *http.Request, def *forms.Definition) (*forms.Instance, bool) {
	if err := r.ParseForm(); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid form body")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return nil, false
	}
	return def.Bind(r.PostForm), true
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	current, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	ctx := r.Context()

	status := http.StatusOK
	inst := h.forms.Post.New()

	if r.Method == http.MethodPost {
		var parsed bool
		if inst, parsed = h.parsePostForm(w, r, h.forms.Post); !parsed {
			return
		}

		valid, err := forms.Validate(ctx, inst, forms.Context{UserID: current.UserID})
		if err != nil {
			h.renderError(w, r, err)
			return
		}
		if valid {
			post := models.Post{Body: inst.Value(validators.FieldPost), UserID: current.UserID}
			if _, err = h.services.PostService.CreatePost(ctx, post); err != nil {
				h.renderError(w, r, err)
				return
			}
			http.Redirect(w, r, "/index", http.StatusSeeOther)
			return
		}
		status = http.StatusUnprocessableEntity
	}

	posts, err := h.services.PostService.ListPosts(ctx, models.PostFilter{})
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.render(w, r, status, viewIndex, pageData{
		Title: "Home",
		Form:  &formView{Action: "/index", Instance: inst},
		Posts: posts,
	})
}

func (h *Handler) user(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := h.services.UserService.GetUserByUsername(ctx, chi.URLParam(r, "username"))
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	posts, err := h.services.PostService.ListPosts(ctx, models.PostFilter{UserID: user.UserID})
	if err != nil {
		h.renderError(w, r, err)
		return
	}

	h.render(w, r, http.StatusOK, viewUser, pageData{
		Title: user.Username,
		User:  &user,
		Posts: posts,
	})
}

func (h *Handler) editProfile(w http.ResponseWriter, r *http.Request) {
	current, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	ctx := r.Context()

	if r.Method == http.MethodGet {
		inst := h.forms.EditProfile.New()
		inst.SetValue(validators.FieldUsername, current.Username)
		inst.SetValue(validators.FieldAboutMe, current.AboutMe)

		var message string
		if r.URL.Query().Get("saved") != "" {
			message = "Your changes have been saved."
		}
		h.renderEditProfile(w, r, http.StatusOK, inst, message)
		return
	}

	inst, parsed := h.parsePostForm(w, r, h.forms.EditProfile)
	if !parsed {
		return
	}

	valid, err := forms.Validate(ctx, inst, forms.Context{
		OriginalUsername: current.Username,
		UserID:           current.UserID,
	})
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	if !valid {
		h.renderEditProfile(w, r, http.StatusUnprocessableEntity, inst, "")
		return
	}

	current.Username = inst.Value(validators.FieldUsername)
	current.AboutMe = inst.Value(validators.FieldAboutMe)
	if _, err = h.services.UserService.UpdateProfile(ctx, current); err != nil {
		h.renderError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", current.UserID).Msg("profile updated")
	http.Redirect(w, r, "/edit_profile?saved=1", http.StatusSeeOther)
}

func (h *Handler) renderEditProfile(w http.ResponseWriter, r *http.Request, status int, inst *forms.Instance, message string) {
	h.render(w, r, status, viewEditProfile, pageData{
		Title:   "Edit Profile",
		Form:    &formView{Action: "/edit_profile", Instance: inst},
		Message: message,
	})
}

func (h *Handler) rhymes(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.renderRhymes(w, r, http.StatusOK, h.forms.Rhyme.New(), nil)
		return
	}

	inst, parsed := h.parsePostForm(w, r, h.forms.Rhyme)
	if !parsed {
		return
	}

	valid, err := forms.Validate(r.Context(), inst, forms.Context{})
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	if !valid {
		h.renderRhymes(w, r, http.StatusUnprocessableEntity, inst, nil)
		return
	}

	record, _ := inst.Result(validators.FieldWord).(models.RhymeRecord)
	h.renderRhymes(w, r, http.StatusOK, inst, &record)
}

func (h *Handler) renderRhymes(w http.ResponseWriter, r *http.Request, status int, inst *forms.Instance, record *models.RhymeRecord) {
	h.render(w, r, status, viewRhymes, pageData{
		Title:  "Rhymes",
		Form:   &formView{Action: "/rhymes", Instance: inst},
		Rhymes: record,
	})
}
