// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package route

import (
	"net/http"

	"github.com/justinas/alice"
	"github.com/xmidt-org/cama/httperror"
	"go.uber.org/zap"
)

// ErrorHandlers are the handlers for requests that end in an error status rather
// than at a route's handler.  Any nil field falls back to MessageHandler.
type ErrorHandlers struct {
	BadRequest       http.Handler
	PermissionDenied http.Handler
	NotFound         http.Handler
	MethodNotAllowed http.Handler
	ServerError      http.Handler
}

// MessageHandler writes the status text of status as a JSON {"message"} body
func MessageHandler(status int) http.Handler {
	return http.HandlerFunc(func(response http.ResponseWriter, _ *http.Request) {
		httperror.WriteMessage(response, http.StatusText(status), status, nil)
	})
}

func orDefault(h http.Handler, status int) http.Handler {
	if h != nil {
		return h
	}

	return MessageHandler(status)
}

func (eh ErrorHandlers) notFound() http.Handler {
	return orDefault(eh.NotFound, http.StatusNotFound)
}

func (eh ErrorHandlers) methodNotAllowed() http.Handler {
	return orDefault(eh.MethodNotAllowed, http.StatusMethodNotAllowed)
}

// ForStatus returns the handler for one of 400, 403, 404, 405, or 500.  Any
// other status is served by MessageHandler.
func (eh ErrorHandlers) ForStatus(status int) http.Handler {
	switch status {
	case http.StatusBadRequest:
		return orDefault(eh.BadRequest, status)
	case http.StatusForbidden:
		return orDefault(eh.PermissionDenied, status)
	case http.StatusNotFound:
		return eh.notFound()
	case http.StatusMethodNotAllowed:
		return eh.methodNotAllowed()
	case http.StatusInternalServerError:
		return orDefault(eh.ServerError, status)
	default:
		return MessageHandler(status)
	}
}

// Recover produces a constructor that turns a panic in the decorated handler into
// the ServerError response.  http.ErrAbortHandler is passed through untouched.
func Recover(eh ErrorHandlers, logger *zap.Logger) alice.Constructor {
	if logger == nil {
		logger = zap.NewNop()
	}

	serverError := eh.ForStatus(http.StatusInternalServerError)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				if r == http.ErrAbortHandler {
					panic(r)
				}

				logger.Error(
					"handler panicked",
					zap.Any("panic", r),
					zap.String("method", request.Method),
					zap.String("path", request.URL.Path),
					zap.Stack("stack"),
				)

				serverError.ServeHTTP(response, request)
			}()

			next.ServeHTTP(response, request)
		})
	}
}
