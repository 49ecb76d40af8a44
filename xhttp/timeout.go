// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xhttp

import (
	"context"
	"net/http"
	"time"

	"github.com/justinas/alice"
)

// Timeout returns an Alice-style constructor that applies a timeout to all request contexts.
// If timeout is nonpositive, the returned constructor simply returns the next http.Handler undecorated.
//
// The returned constructor does not enforce the timeout in any way.  Decorated http.Handler code is responsible
// for timing out as appropriate, e.g. by passing the request context to the study store.
func Timeout(timeout time.Duration) alice.Constructor {
	if timeout < 1 {
		return passThrough
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
			ctx, cancel := context.WithTimeout(request.Context(), timeout)
			defer cancel()

			next.ServeHTTP(response, request.WithContext(ctx))
		})
	}
}
