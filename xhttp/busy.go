// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xhttp

import (
	"net/http"

	"github.com/justinas/alice"
	"github.com/xmidt-org/cama/httperror"
	"github.com/xmidt-org/cama/logging"
	"go.uber.org/zap"
)

func passThrough(next http.Handler) http.Handler {
	return next
}

// Busy creates an Alice-style constructor that limits the number of HTTP transactions handled by decorated
// handlers.  A transaction over the limit waits until a slot frees up or its context is canceled, in which case
// it is answered with http.StatusServiceUnavailable.  A nonpositive maxTransactions means no limit.
func Busy(maxTransactions int) alice.Constructor {
	if maxTransactions < 1 {
		return passThrough
	}

	slots := make(chan struct{}, maxTransactions)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
			ctx := request.Context()

			select {
			case slots <- struct{}{}:
				defer func() { <-slots }()
				next.ServeHTTP(response, request)

			case <-ctx.Done():
				logging.GetLogger(ctx).Error("server busy", zap.Error(ctx.Err()))
				httperror.WriteMessage(response, "Server busy", http.StatusServiceUnavailable, nil)
			}
		})
	}
}
