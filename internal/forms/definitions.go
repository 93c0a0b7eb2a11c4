// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package forms

import (
	"context"

	"github.com/MKhiriev/rhymebook/internal/validators"
	"github.com/MKhiriev/rhymebook/models"
)

// IdentityChecker reports whether a username or e-mail is free to use.
type IdentityChecker interface {
	// CheckUsername returns nil when candidate equals original or nobody
	// else owns it; validators.ErrDuplicateIdentity when taken.
	CheckUsername(ctx context.Context, candidate, original string, excludeUserID int64) error
	CheckEmail(ctx context.Context, email string) error
}

// RhymeLooker resolves a word to its rhyme record.
type RhymeLooker interface {
	Lookup(ctx context.Context, word string) (models.RhymeRecord, error)
}

// Forms is the set of form definitions used by the web layer.
type Forms struct {
	Login       *Definition
	Register    *Definition
	EditProfile *Definition
	Post        *Definition
	Rhyme       *Definition
	Empty       *Definition
}

// NewForms builds every definition, binding custom checks to the given
// collaborators.
func NewForms(identities IdentityChecker, rhymes RhymeLooker) *Forms {
	return &Forms{
		Login:       LoginForm(),
		Register:    RegisterForm(identities),
		EditProfile: EditProfileForm(identities),
		Post:        PostForm(),
		Rhyme:       RhymeForm(rhymes),
		Empty:       EmptyForm(),
	}
}

func LoginForm() *Definition {
	return &Definition{
		Name: "login",
		Fields: []Field{
			{Name: validators.FieldUsername, Label: "Username", Type: "text", Rules: []validators.Rule{validators.Required()}},
			{Name: validators.FieldPassword, Label: "Password", Type: "password", Rules: []validators.Rule{validators.Required()}},
			{Name: validators.FieldRemember, Label: "Remember Me", Type: "checkbox"},
		},
		Submit: "Sign In",
	}
}

func RegisterForm(identities IdentityChecker) *Definition {
	return &Definition{
		Name: "register",
		Fields: []Field{
			{
				Name:  validators.FieldUsername,
				Label: "Username",
				Type:  "text",
				Rules: []validators.Rule{validators.Required(), validators.Length(1, validators.MaxUsernameLength)},
				Check: func(ctx context.Context, in CheckInput) (any, error) {
					return nil, identities.CheckUsername(ctx, in.Value, "", 0)
				},
			},
			{
				Name:  validators.FieldEmail,
				Label: "Email",
				Type:  "email",
				Rules: []validators.Rule{validators.Required(), validators.Email(), validators.Length(1, validators.MaxEmailLength)},
				Check: func(ctx context.Context, in CheckInput) (any, error) {
					return nil, identities.CheckEmail(ctx, in.Value)
				},
			},
			{Name: validators.FieldPassword, Label: "Password", Type: "password", Rules: []validators.Rule{validators.Required()}},
			{
				Name:  validators.FieldPassword2,
				Label: "Repeat Password",
				Type:  "password",
				Rules: []validators.Rule{validators.Required()},
				Check: EqualTo(validators.FieldPassword),
			},
		},
		Submit: "Register",
	}
}

// EditProfileForm checks the new username against every other user. The
// current username comes from Context.OriginalUsername.
func EditProfileForm(identities IdentityChecker) *Definition {
	return &Definition{
		Name: "edit_profile",
		Fields: []Field{
			{
				Name:  validators.FieldUsername,
				Label: "Username",
				Type:  "text",
				Rules: []validators.Rule{validators.Required(), validators.Length(1, validators.MaxUsernameLength)},
				Check: func(ctx context.Context, in CheckInput) (any, error) {
					return nil, identities.CheckUsername(ctx, in.Value, in.Context.OriginalUsername, in.Context.UserID)
				},
			},
			{
				Name:  validators.FieldAboutMe,
				Label: "About me",
				Type:  "textarea",
				Rules: []validators.Rule{validators.Length(0, validators.MaxAboutMeLength)},
			},
		},
		Submit: "Submit",
	}
}

func PostForm() *Definition {
	return &Definition{
		Name: "post",
		Fields: []Field{
			{
				Name:  validators.FieldPost,
				Label: "Say something",
				Type:  "textarea",
				Rules: []validators.Rule{validators.Required(), validators.Length(validators.MinPostLength, validators.MaxPostLength)},
			},
		},
		Submit: "Submit",
	}
}

// RhymeForm looks the word up once built-in rules pass. On success the
// models.RhymeRecord is available via Instance.Result("word").
func RhymeForm(rhymes RhymeLooker) *Definition {
	return &Definition{
		Name: "rhyme",
		Fields: []Field{
			{
				Name:  validators.FieldWord,
				Label: "Word",
				Type:  "text",
				Rules: []validators.Rule{validators.Required(), validators.SingleToken(), validators.Length(1, validators.MaxWordLength)},
				Check: func(ctx context.Context, in CheckInput) (any, error) {
					record, err := rhymes.Lookup(ctx, in.Value)
					if err != nil {
						return nil, err
					}
					return record, nil
				},
			},
		},
		Submit: "Find rhymes",
	}
}

// EmptyForm has no fields; it is used for logout and similar one-button
// confirmations.
func EmptyForm() *Definition {
	return &Definition{Name: "empty", Submit: "Submit"}
}

// EqualTo fails with validators.ErrFieldMismatch when the value differs from
// the named field of the same instance.
func EqualTo(other string) Check {
	return func(_ context.Context, in CheckInput) (any, error) {
		if in.Value != in.Form.Value(other) {
			return nil, validators.ErrFieldMismatch
		}
		return nil, nil
	}
}
