// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xhttp

import (
	"net/http"
	"net/textproto"

	"github.com/justinas/alice"
)

// DefaultHeaders are the headers every CAMA response carries unless configuration overrides them.
func DefaultHeaders() http.Header {
	return http.Header{
		"X-Content-Type-Options": {"nosniff"},
		"X-Frame-Options":        {"DENY"},
		"Referrer-Policy":        {"same-origin"},
	}
}

// StaticHeaders returns an Alice-style constructor that emits a static set of headers
// into every response.  If the set of headers is empty, the constructor does no
// decoration.
func StaticHeaders(extra http.Header) alice.Constructor {
	if len(extra) == 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	// canonicalize once, so that headers unmarshaled from configuration behave
	// the same as those built with http.Header methods
	preprocessed := make(http.Header, len(extra))
	for k, v := range extra {
		preprocessed[textproto.CanonicalMIMEHeaderKey(k)] = v
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
			header := response.Header()
			for k, v := range preprocessed {
				header[k] = v
			}

			next.ServeHTTP(response, request)
		})
	}
}
