// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package study

import (
	"context"
	"strings"

	"github.com/pkg/errors"
)

var (
	ErrNotFound = errors.New("study not found")
	ErrInvalid  = errors.New("study is invalid")
)

// Filter selects studies.  The zero Filter selects everything.  Title and Category
// are decoded from the query parameters "title" and "category__name".
type Filter struct {
	// Title matches studies whose title contains it, ignoring case
	Title string `schema:"title"`

	// Category matches studies whose category name is exactly this
	Category string `schema:"category__name"`

	// Approved, when set, matches only studies with this approval state
	Approved *bool `schema:"-"`
}

// Approved returns a pointer to b for use in Filter.Approved
func Approved(b bool) *bool {
	return &b
}

// Match tests a single study against this filter
func (f Filter) Match(s *Study) bool {
	if f.Approved != nil && s.Approved != *f.Approved {
		return false
	}

	if len(f.Title) > 0 && !strings.Contains(strings.ToLower(s.Title), strings.ToLower(f.Title)) {
		return false
	}

	if len(f.Category) > 0 && (s.Category == nil || s.Category.Name != f.Category) {
		return false
	}

	return true
}

// Store is the persistence strategy for studies.  Implementations return ErrNotFound for
// unknown ids and an error matching ErrInvalid for studies that fail validation.
type Store interface {
	// List returns the matching studies ordered by id
	List(context.Context, Filter) ([]Study, error)

	Get(context.Context, int64) (Study, error)

	// Create assigns a new id and stores the study
	Create(context.Context, Study) (Study, error)

	// Approve marks a study approved and returns it
	Approve(context.Context, int64) (Study, error)

	Delete(context.Context, int64) error
}
