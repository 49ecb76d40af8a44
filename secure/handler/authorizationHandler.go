// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"net/http"

	"github.com/justinas/alice"
	"github.com/xmidt-org/cama/httperror"
	"github.com/xmidt-org/cama/logging"
	"github.com/xmidt-org/cama/secure"
	"go.uber.org/zap"
)

var authenticateHeader = http.Header{"Www-Authenticate": []string{`Bearer realm="api"`}}

// AuthorizationHandler provides decoration for http.Handler instances and will
// ensure that requests pass the validator.
type AuthorizationHandler struct {
	HeaderName string
	Validator  secure.Validator
	Measures   *secure.Measures

	// Optional admits requests without any authorization header, leaving no claims in
	// the context.  A header that is present must still be valid.
	Optional bool
}

// headerName returns the authorization header to use, either a.HeaderName
// or secure.AuthorizationHeader if no header is supplied
func (a AuthorizationHandler) headerName() string {
	if len(a.HeaderName) > 0 {
		return a.HeaderName
	}

	return secure.AuthorizationHeader
}

func (a AuthorizationHandler) reject(response http.ResponseWriter, reason, message string) {
	if a.Measures != nil {
		a.Measures.ValidationReason.With(secure.ReasonLabel, reason).Add(1)
	}

	httperror.WriteMessage(response, message, http.StatusUnauthorized, authenticateHeader)
}

// Decorate provides an Alice-compatible constructor that validates requests
// using the configuration specified.  Every rejection is a 401.
func (a AuthorizationHandler) Decorate(delegate http.Handler) http.Handler {
	headerName := a.headerName()

	return http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
		logger := logging.GetLogger(request.Context())

		headerValue := request.Header.Get(headerName)
		if len(headerValue) == 0 {
			if a.Optional {
				delegate.ServeHTTP(response, request)
				return
			}

			logger.Debug("missing header", zap.String("name", headerName))
			a.reject(response, secure.MissingHeaderReason, "Authentication credentials were not provided.")
			return
		}

		token, err := secure.ParseAuthorization(headerValue)
		if err != nil {
			logger.Info("invalid authorization header", zap.String("name", headerName), zap.Error(err))
			a.reject(response, secure.InvalidHeaderReason, "Authorization header is malformed.")
			return
		}

		claims, err := a.Validator.Validate(request.Context(), token)
		if err != nil {
			logger.Info(
				"request denied",
				zap.Error(err),
				zap.String("method", request.Method),
				zap.String("path", request.URL.Path),
				zap.String("user-agent", request.Header.Get("User-Agent")),
			)

			httperror.WriteBody(response, http.StatusUnauthorized, authenticateHeader, InvalidTokenBody)
			return
		}

		ctx := NewContextWithValue(request.Context(), &ContextValues{
			Method: request.Method,
			Path:   request.URL.Path,
			Claims: claims,
		})

		ctx = logging.WithLogger(ctx, logger.With(zap.String("userID", claims.UserID)))
		delegate.ServeHTTP(response, request.WithContext(ctx))
	})
}

// PermissionDenied answers an authorized caller who lacks the required privileges
func PermissionDenied(response http.ResponseWriter, _ *http.Request) {
	httperror.WriteMessage(response, "You do not have permission to perform this action.", http.StatusForbidden, nil)
}

// RequireAdmin returns an Alice-compatible constructor that only admits requests whose
// authorized claims carry is_admin.  It must be chained after Decorate.  Callers without
// admin rights are served by denied, which defaults to PermissionDenied.
func RequireAdmin(denied http.Handler) alice.Constructor {
	if denied == nil {
		denied = http.HandlerFunc(PermissionDenied)
	}

	return func(delegate http.Handler) http.Handler {
		return http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
			claims, ok := ClaimsFromContext(request.Context())
			switch {
			case !ok:
				httperror.WriteMessage(response, "Authentication credentials were not provided.", http.StatusUnauthorized, authenticateHeader)

			case !claims.IsAdmin:
				denied.ServeHTTP(response, request)

			default:
				delegate.ServeHTTP(response, request)
			}
		})
	}
}
