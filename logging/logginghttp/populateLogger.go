// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package logginghttp

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/justinas/alice"
	"github.com/xmidt-org/cama/logging"
	"github.com/xmidt-org/cama/xhttp"
	"github.com/xmidt-org/sallust"
	"go.uber.org/zap"
)

const (
	// RequestIDHeader carries the request identifier in both directions.  An inbound value
	// is honored; otherwise one is generated.
	RequestIDHeader = "X-Request-Id"

	requestIDKey     = "requestID"
	requestMethodKey = "requestMethod"
	requestURIKey    = "requestURI"
	remoteAddrKey    = "remoteAddr"
)

// RequestID returns the identifier for a request, generating one if the client did not supply it.
func RequestID(request *http.Request) string {
	if id := request.Header.Get(RequestIDHeader); len(id) > 0 {
		return id
	}

	return uuid.NewString()
}

// PopulateLogger produces an Alice-style decorator that emits a decorated zap logger into the request context.
// The supplied base logger is decorated for each request with information about the request.  Downstream code
// can then use this logger via logging.GetLogger(request.Context()).
//
// If the base parameter is not supplied, the default logger is decorated for each request.
func PopulateLogger(base *zap.Logger) alice.Constructor {
	if base == nil {
		base = sallust.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
			id := RequestID(request)
			response.Header().Set(RequestIDHeader, id)

			ctx := logging.WithLogger(
				request.Context(),
				base.With(
					zap.String(requestIDKey, id),
					zap.String(requestMethodKey, request.Method),
					zap.String(requestURIKey, request.RequestURI),
					zap.String(remoteAddrKey, request.RemoteAddr),
				),
			)

			next.ServeHTTP(response, request.WithContext(ctx))
		})
	}
}

// AccessLog produces an Alice-style decorator that logs each completed request through the
// request-scoped logger.  It must be chained after PopulateLogger to pick up the request fields.
func AccessLog() alice.Constructor {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
			var (
				start = time.Now()
				rw    = xhttp.WrapResponseWriter(response)
			)

			next.ServeHTTP(rw, request)

			logging.GetLogger(request.Context()).Info(
				"request completed",
				zap.Int("status", rw.StatusCode()),
				zap.Int64("bytes", rw.Written()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
