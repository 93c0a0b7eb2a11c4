// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/MKhiriev/rhymebook/internal/forms"
	"github.com/MKhiriev/rhymebook/internal/logger"
	"github.com/MKhiriev/rhymebook/internal/service"
	"github.com/MKhiriev/rhymebook/internal/utils"
	"github.com/MKhiriev/rhymebook/internal/validators"
	"github.com/MKhiriev/rhymebook/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	if _, ok := utils.CurrentUserFromContext(r.Context()); ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	next := safeNext(r.URL.Query().Get("next"))
	action := "/login"
	if next != "/" {
		action = "/login?next=" + url.QueryEscape(next)
	}

	if r.Method == http.MethodGet {
		h.renderLogin(w, r, http.StatusOK, action, h.forms.Login.New(), "")
		return
	}

	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form body")
		h.renderLogin(w, r, http.StatusBadRequest, action, h.forms.Login.New(), "Invalid form submission.")
		return
	}

	inst := h.forms.Login.Bind(r.PostForm)
	valid, err := forms.Validate(ctx, inst, forms.Context{})
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	if !valid {
		h.renderLogin(w, r, http.StatusUnprocessableEntity, action, inst, "")
		return
	}

	user, err := h.services.AuthService.Login(ctx, inst.Value(validators.FieldUsername), inst.Value(validators.FieldPassword))
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) || errors.Is(err, service.ErrInvalidDataProvided) {
			log.Info().Str("username", inst.Value(validators.FieldUsername)).Msg("sign in rejected")
			h.renderLogin(w, r, http.StatusUnauthorized, action, inst, "Invalid username or password")
			return
		}
		h.renderError(w, r, err)
		return
	}

	if !h.startSession(w, r, user, inst.Checked(validators.FieldRemember)) {
		return
	}

	log.Debug().Int64("user_id", user.UserID).Msg("user signed in")
	http.Redirect(w, r, next, http.StatusSeeOther)
}

func (h *Handler) renderLogin(w http.ResponseWriter, r *http.Request, status int, action string, inst *forms.Instance, message string) {
	h.render(w, r, status, viewLogin, pageData{
		Title:   "Sign In",
		Form:    &formView{Action: action, Instance: inst},
		Message: message,
	})
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	if _, ok := utils.CurrentUserFromContext(r.Context()); ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if r.Method == http.MethodGet {
		h.renderRegister(w, r, http.StatusOK, h.forms.Register.New())
		return
	}

	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form body")
		h.renderRegister(w, r, http.StatusBadRequest, h.forms.Register.New())
		return
	}

	inst := h.forms.Register.Bind(r.PostForm)
	valid, err := forms.Validate(ctx, inst, forms.Context{})
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	if !valid {
		h.renderRegister(w, r, http.StatusUnprocessableEntity, inst)
		return
	}

	user := models.User{
		Username: inst.Value(validators.FieldUsername),
		Email:    inst.Value(validators.FieldEmail),
	}
	registered, err := h.services.AuthService.RegisterUser(ctx, user, inst.Value(validators.FieldPassword))
	if err != nil {
		// lost a race against a concurrent registration
		if errors.Is(err, validators.ErrDuplicateIdentity) {
			h.render(w, r, http.StatusConflict, viewRegister, pageData{
				Title:   "Register",
				Form:    &formView{Action: "/register", Instance: inst},
				Message: "Username or email is " + validators.ErrDuplicateIdentity.Error(),
			})
			return
		}
		h.renderError(w, r, err)
		return
	}

	log.Info().Int64("user_id", registered.UserID).Msg("user registered")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *Handler) renderRegister(w http.ResponseWriter, r *http.Request, status int, inst *forms.Instance) {
	h.render(w, r, status, viewRegister, pageData{
		Title: "Register",
		Form:  &formView{Action: "/register", Instance: inst},
	})
}

// logout is the target of the empty confirmation form rendered in the
// navigation bar.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	inst, parsed := h.parsePostForm(w, r, h.forms.Empty)
	if !parsed {
		return
	}

	valid, err := forms.Validate(r.Context(), inst, forms.Context{})
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	if !valid {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	h.clearSessionCookie(w)
	logger.FromRequest(r).Debug().Msg("user signed out")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// startSession issues a token for user and sets the session cookie.
// It renders the error page and returns false when the token cannot be
// created.
func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, user models.User, remember bool) bool {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		h.renderError(w, r, err)
		return false
	}
	h.setSessionCookie(w, token, remember)
	return true
}
