// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/rhymebook/internal/logger"
	"github.com/MKhiriev/rhymebook/internal/service"
	"github.com/MKhiriev/rhymebook/internal/utils"
	"github.com/MKhiriev/rhymebook/models"
)

const sessionCookieName = "rhymebook_session"

// withSession resolves the session cookie into the current user.
//
// A missing, expired or otherwise invalid token, as well as a token whose
// user no longer exists, leaves the request anonymous and drops the cookie.
// On success the user's last_seen is refreshed and the user is stored in
// the request context via [utils.WithCurrentUser].
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, cookie.Value)
		if err != nil {
			log.Debug().Err(err).Msg("session cookie rejected")
			h.clearSessionCookie(w)
			next.ServeHTTP(w, r)
			return
		}

		user, err := h.services.UserService.GetUserByID(ctx, token.UserID)
		if err != nil {
			if errors.Is(err, service.ErrUserNotFound) {
				log.Debug().Int64("user_id", token.UserID).Msg("session user no longer exists")
				h.clearSessionCookie(w)
				next.ServeHTTP(w, r)
				return
			}
			h.renderError(w, r, err)
			return
		}

		if err = h.services.UserService.TouchLastSeen(ctx, user.UserID); err != nil {
			log.Warn().Err(err).Int64("user_id", user.UserID).Msg("last_seen was not updated")
		}

		next.ServeHTTP(w, r.WithContext(utils.WithCurrentUser(ctx, user)))
	})
}

// requireLogin redirects anonymous requests to the login page, remembering
// the requested path in the "next" query parameter.
func (h *Handler) requireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := utils.CurrentUserFromContext(r.Context()); !ok {
			target := "/login?next=" + url.QueryEscape(r.URL.RequestURI())
			http.Redirect(w, r, target, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// setSessionCookie stores the signed token. When remember is set the
// cookie outlives the browser session and expires with the token.
func (h *Handler) setSessionCookie(w http.ResponseWriter, token models.Token, remember bool) {
	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    token.SignedString,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
	if remember && token.ExpiresAt != nil {
		cookie.Expires = token.ExpiresAt.Time
	}
	http.SetCookie(w, cookie)
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

// safeNext returns next when it is a local absolute path, "/" otherwise.
func safeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return "/"
	}
	return next
}
