// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/rhymebook/models"
)

// Field name constants shared by form definitions and [ModelValidator].
const (
	FieldUsername  = "username"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldPassword2 = "password2"
	FieldRemember  = "remember_me"
	FieldAboutMe   = "about_me"
	FieldPost      = "post"
	FieldWord      = "word"
	FieldUserID    = "user_id"
)

// Column limits of the relational schema.
const (
	MaxUsernameLength = 64
	MaxEmailLength    = 120
	MaxAboutMeLength  = 140
	MinPostLength     = 1
	MaxPostLength     = 140

	// MaxWordLength bounds a rhyme lookup key.
	MaxWordLength = 64
)

// ModelValidator implements [Validator] for models.User and models.Post.
// Both value and pointer forms are accepted; optional field names restrict
// validation to a subset.
type ModelValidator struct{}

// NewModelValidator constructs a new ModelValidator and returns it as the
// Validator interface.
func NewModelValidator() Validator {
	return &ModelValidator{}
}

// Validate dispatches on the dynamic type of obj.
// Returns ErrUnsupportedType for anything other than a user or a post.
func (v *ModelValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)
	case models.Post:
		return v.validatePost(value, fields...)
	case *models.Post:
		return v.validatePost(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

// validateUser checks Username, Email and AboutMe by default.
func (v *ModelValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldAboutMe}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldUsername:
			err = Run(user.Username, Required(), Length(1, MaxUsernameLength))
		case FieldEmail:
			err = Run(user.Email, Required(), Email(), Length(1, MaxEmailLength))
		case FieldAboutMe:
			err = Run(user.AboutMe, Length(0, MaxAboutMeLength))
		case FieldUserID:
			if user.UserID <= 0 {
				err = ErrInvalidUserID
			}
		default:
			return ErrUnknownField
		}
		if err != nil {
			return fmt.Errorf("%s: %w", f, err)
		}
	}

	return nil
}

// validatePost checks Body and UserID by default.
func (v *ModelValidator) validatePost(post models.Post, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPost, FieldUserID}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldPost:
			err = Run(post.Body, Required(), Length(MinPostLength, MaxPostLength))
		case FieldUserID:
			if post.UserID <= 0 {
				err = ErrInvalidUserID
			}
		default:
			return ErrUnknownField
		}
		if err != nil {
			return fmt.Errorf("%s: %w", f, err)
		}
	}

	return nil
}
