// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package route

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

var ErrNoHandler = errors.New("a route requires a handler")

// Route maps a gorilla/mux path template onto a handler.  Empty Methods means any method.
type Route struct {
	Pattern string
	Methods []string
	Name    string
	Handler http.Handler
}

// Description is the externally visible part of a Route
type Description struct {
	Pattern string   `json:"pattern"`
	Methods []string `json:"methods,omitempty"`
	Name    string   `json:"name,omitempty"`
}

// Table is an ordered set of routes
type Table []Route

// Join mounts pattern under prefix, preserving any trailing slash on pattern
func Join(prefix, pattern string) string {
	prefix = strings.TrimRight(prefix, "/")
	pattern = strings.TrimLeft(pattern, "/")
	return prefix + "/" + pattern
}

// Include returns a copy of t with every pattern mounted under prefix.  Names,
// methods, handlers, and order are unchanged.
func Include(prefix string, t Table) Table {
	included := make(Table, len(t))
	for i, r := range t {
		r.Pattern = Join(prefix, r.Pattern)
		r.Methods = append([]string(nil), r.Methods...)
		included[i] = r
	}

	return included
}

// Describe lists the routes of this table in order
func (t Table) Describe() []Description {
	d := make([]Description, len(t))
	for i, r := range t {
		d[i] = Description{
			Pattern: r.Pattern,
			Methods: append([]string(nil), r.Methods...),
			Name:    r.Name,
		}
	}

	return d
}

// Build registers each route on router in table order.  A nil router means a new one.
// Trailing slashes are strict: a request for a pattern without its trailing slash is
// redirected to the slashed form.  Unmatched paths are served by eh.NotFound and
// matched paths with an unmatched method by eh.MethodNotAllowed.
func (t Table) Build(router *mux.Router, eh ErrorHandlers) (*mux.Router, error) {
	if router == nil {
		router = mux.NewRouter()
	}

	router.StrictSlash(true)
	names := make(map[string]bool, len(t))
	for _, r := range t {
		if r.Handler == nil {
			return nil, errors.WithMessage(ErrNoHandler, r.Pattern)
		}

		if len(r.Name) > 0 {
			if names[r.Name] {
				return nil, errors.Errorf("duplicate route name: %s", r.Name)
			}

			names[r.Name] = true
		}

		mr := router.Handle(r.Pattern, r.Handler)
		if len(r.Methods) > 0 {
			mr.Methods(r.Methods...)
		}

		if len(r.Name) > 0 {
			mr.Name(r.Name)
		}

		if err := mr.GetError(); err != nil {
			return nil, errors.Wrapf(err, "invalid route %s", r.Pattern)
		}
	}

	router.NotFoundHandler = eh.notFound()
	router.MethodNotAllowedHandler = eh.methodNotAllowed()
	return router, nil
}

// Reverse produces the URL of the named route.  Pairs are the template variables
// as alternating name and value.
func Reverse(router *mux.Router, name string, pairs ...string) (*url.URL, error) {
	r := router.Get(name)
	if r == nil {
		return nil, errors.Errorf("no such route: %s", name)
	}

	return r.URL(pairs...)
}
