// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// service endpoints
	router.Get("/healthz", h.healthz)
	router.Get("/api/version", h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Use(h.withSession)

		// anonymous pages
		r.Get("/login", h.login)
		r.Post("/login", h.login)
		r.Get("/register", h.register)
		r.Post("/register", h.register)

		// pages requiring a signed-in user
		r.Group(func(r chi.Router) {
			r.Use(h.requireLogin)

			r.Get("/", h.index)
			r.Post("/", h.index)
			r.Get("/index", h.index)
			r.Post("/index", h.index)
			r.Get("/user/{username}", h.user)
			r.Get("/edit_profile", h.editProfile)
			r.Post("/edit_profile", h.editProfile)
			r.Get("/rhymes", h.rhymes)
			r.Post("/rhymes", h.rhymes)
			r.Post("/logout", h.logout)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
