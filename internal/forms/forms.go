// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package forms declares the application's form definitions and the single
// validation pass that evaluates them.
//
// A [Definition] is an immutable, shareable description: an ordered list of
// fields, each with an ordered rule chain and an optional custom [Check],
// plus a submit label. Request data is bound into an [Instance], which is
// request-scoped and never shared. [Validate] runs every field's chain,
// collects one error per failing field and reports whether the instance is
// valid.
//
// Errors wrapping a field-level kind from package validators are rendered
// inline. Any other error returned by a custom check is a system failure:
// the pass stops and returns it to the caller.
package forms

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/rhymebook/internal/validators"
)

// Context carries the request-derived data that custom checks need.
type Context struct {
	// OriginalUsername is the current user's username before an edit.
	// Empty outside of profile editing.
	OriginalUsername string

	// UserID is the authenticated user's id, 0 for anonymous requests.
	UserID int64
}

// CheckInput is what a custom check sees.
type CheckInput struct {
	Value   string
	Form    *Instance
	Context Context
}

// Check is a field's custom check. It runs only after the built-in rules
// of the field passed. A non-nil result is stored on the instance.
type Check func(ctx context.Context, in CheckInput) (any, error)

// Field describes one input of a form.
type Field struct {
	Name  string
	Label string
	// Type is the HTML input type (text, password, email, checkbox, textarea).
	Type  string
	Rules []validators.Rule
	Check Check
}

// Definition is a named form: fields in display order plus a submit label.
type Definition struct {
	Name   string
	Fields []Field
	Submit string
}

// New returns an empty instance of the form, suitable for a GET render.
func (d *Definition) New() *Instance {
	return &Instance{
		Definition: d,
		values:     make(map[string]string, len(d.Fields)),
		errors:     make(map[string]error),
		results:    make(map[string]any),
	}
}

// Bind copies the submitted values for every declared field into a fresh
// instance. Undeclared keys are ignored. Values are trimmed of surrounding
// whitespace, except for password fields which are kept verbatim.
func (d *Definition) Bind(values url.Values) *Instance {
	inst := d.New()
	for _, f := range d.Fields {
		value := values.Get(f.Name)
		if f.Type != "password" {
			value = strings.TrimSpace(value)
		}
		inst.values[f.Name] = value
	}
	return inst
}

// Instance holds the values and validation outcome of one submission.
type Instance struct {
	Definition *Definition

	values  map[string]string
	errors  map[string]error
	results map[string]any
}

// Value returns the submitted value of a field.
func (i *Instance) Value(name string) string {
	return i.values[name]
}

// SetValue pre-fills a field, e.g. with the stored profile on GET.
func (i *Instance) SetValue(name, value string) {
	i.values[name] = value
}

// Checked reports whether a checkbox field was ticked.
func (i *Instance) Checked(name string) bool {
	switch strings.ToLower(i.values[name]) {
	case "on", "true", "1", "y", "yes":
		return true
	}
	return false
}

// Error returns the error recorded for a field, or nil.
func (i *Instance) Error(name string) error {
	return i.errors[name]
}

// Errors returns a copy of all recorded field errors keyed by field name.
func (i *Instance) Errors() map[string]error {
	out := make(map[string]error, len(i.errors))
	for k, v := range i.errors {
		out[k] = v
	}
	return out
}

// ErrorCount returns the number of fields that failed.
func (i *Instance) ErrorCount() int {
	return len(i.errors)
}

// Result returns what the field's custom check produced, if anything.
func (i *Instance) Result(name string) any {
	return i.results[name]
}

// Validate runs the validation pass over inst.
//
// Every field is evaluated. Within a field the rules run in order and stop
// at the first failure; the custom check runs only when all rules passed.
// The returned bool is true iff no field recorded an error. A non-nil error
// means a custom check hit a system failure; the bool is then false and the
// instance must not be treated as validated.
func Validate(ctx context.Context, inst *Instance, fc Context) (bool, error) {
	clear(inst.errors)
	clear(inst.results)

	for _, f := range inst.Definition.Fields {
		value := inst.values[f.Name]

		if err := validators.Run(value, f.Rules...); err != nil {
			inst.errors[f.Name] = err
			continue
		}

		if f.Check == nil {
			continue
		}

		result, err := f.Check(ctx, CheckInput{Value: value, Form: inst, Context: fc})
		if err != nil {
			if validators.IsFieldError(err) {
				inst.errors[f.Name] = err
				continue
			}
			return false, fmt.Errorf("form %s: field %s: %w", inst.Definition.Name, f.Name, err)
		}
		if result != nil {
			inst.results[f.Name] = result
		}
	}

	return len(inst.errors) == 0, nil
}
