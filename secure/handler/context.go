// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"context"

	"github.com/xmidt-org/cama/secure"
)

type contextKey struct{}

// ContextValues are the request values established by a successful authorization
type ContextValues struct {
	Method string
	Path   string
	Claims *secure.Claims
}

// NewContextWithValue returns a context with the specified context values
func NewContextWithValue(ctx context.Context, vals *ContextValues) context.Context {
	return context.WithValue(ctx, contextKey{}, vals)
}

// FromContext returns ContextValues type (if any) along with a boolean that indicates whether
// the returned value is of the required/correct type for this package.
func FromContext(ctx context.Context) (*ContextValues, bool) {
	vals, ofType := ctx.Value(contextKey{}).(*ContextValues)
	return vals, ofType
}

// ClaimsFromContext is a convenience for retrieving only the authorized claims
func ClaimsFromContext(ctx context.Context) (*secure.Claims, bool) {
	if vals, ok := FromContext(ctx); ok && vals.Claims != nil {
		return vals.Claims, true
	}

	return nil, false
}
