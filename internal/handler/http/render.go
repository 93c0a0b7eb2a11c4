// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/rhymebook/internal/forms"
	"github.com/MKhiriev/rhymebook/internal/logger"
	"github.com/MKhiriev/rhymebook/internal/utils"
	"github.com/MKhiriev/rhymebook/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	viewIndex       = "index"
	viewLogin       = "login"
	viewRegister    = "register"
	viewUser        = "user"
	viewEditProfile = "edit_profile"
	viewRhymes      = "rhymes"
	viewError       = "error"
)

var allViews = []string{viewIndex, viewLogin, viewRegister, viewUser, viewEditProfile, viewRhymes, viewError}

type views struct {
	pages map[string]*template.Template
}

func mustParseViews() *views {
	v, err := parseViews()
	if err != nil {
		panic(err)
	}
	return v
}

// parseViews builds one template set per page: the shared layout, the form
// partial and the page's own blocks.
func parseViews() (*views, error) {
	funcs := template.FuncMap{
		"fmtTime": func(t time.Time) string {
			if t.IsZero() {
				return ""
			}
			return t.UTC().Format("2006-01-02 15:04")
		},
	}

	v := &views{pages: make(map[string]*template.Template, len(allViews))}
	for _, name := range allViews {
		t, err := template.New(name).Funcs(funcs).ParseFS(templatesFS,
			"templates/base.html",
			"templates/_form.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parsing view %s: %w", name, err)
		}
		v.pages[name] = t
	}
	return v, nil
}

// formView is what the form partial renders.
type formView struct {
	Action   string
	Instance *forms.Instance
}

type pageData struct {
	Title       string
	CurrentUser *models.User

	Form       *formView
	LogoutForm *formView

	Posts  []models.Post
	User   *models.User
	Rhymes *models.RhymeRecord

	Status  int
	Message string
}

// render executes a page into a buffer first so a template failure never
// leaves a half-written response.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, name string, data pageData) {
	log := logger.FromRequest(r)

	t, ok := h.views.pages[name]
	if !ok {
		log.Error().Err(ErrUnknownView).Str("view", name).Send()
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if user, ok := utils.CurrentUserFromContext(r.Context()); ok {
		data.CurrentUser = &user
		data.LogoutForm = &formView{Action: "/logout", Instance: h.forms.Empty.New()}
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "base", data); err != nil {
		log.Error().Err(err).Str("view", name).Msg("template execution failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// renderError logs err and renders the error page with the status
// errorStatusMap assigns to it.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	level := zerolog.ErrorLevel
	if status < http.StatusInternalServerError {
		level = zerolog.WarnLevel
	}
	logger.FromRequest(r).WithLevel(level).Err(err).Int("status", status).Msg("request failed")

	message := "An unexpected error has occurred."
	if status == http.StatusServiceUnavailable {
		message = "The service is temporarily unavailable. Please try again later."
	} else if status == http.StatusNotFound {
		message = "The page you requested was not found."
	}

	h.render(w, r, status, viewError, pageData{
		Title:   http.StatusText(status),
		Status:  status,
		Message: message,
	})
}
