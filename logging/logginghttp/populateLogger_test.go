// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package logginghttp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/justinas/alice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xmidt-org/cama/logging"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestID(t *testing.T) {
	t.Run("Supplied", func(t *testing.T) {
		request := httptest.NewRequest("GET", "/", nil)
		request.Header.Set(RequestIDHeader, "abc")
		assert.Equal(t, "abc", RequestID(request))
	})

	t.Run("Generated", func(t *testing.T) {
		var (
			assert  = assert.New(t)
			request = httptest.NewRequest("GET", "/", nil)
			first   = RequestID(request)
		)

		assert.Len(first, 36)
		assert.NotEqual(first, RequestID(request))
	})
}

func testPopulateLogger(t *testing.T, base *zap.Logger) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		called   = false
		response = httptest.NewRecorder()
		request  = httptest.NewRequest("GET", "/api/health/", nil)

		decorated = PopulateLogger(base)(http.HandlerFunc(func(_ http.ResponseWriter, request *http.Request) {
			called = true
			assert.NotNil(logging.GetLogger(request.Context()))
		}))
	)

	require.NotNil(decorated)
	decorated.ServeHTTP(response, request)
	assert.True(called)
	assert.NotEmpty(response.Header().Get(RequestIDHeader))
}

func TestPopulateLogger(t *testing.T) {
	t.Run("NilBase", func(t *testing.T) { testPopulateLogger(t, nil) })
	t.Run("CustomBase", func(t *testing.T) { testPopulateLogger(t, zap.NewNop()) })
}

func TestAccessLog(t *testing.T) {
	var (
		assert  = assert.New(t)
		require = require.New(t)

		core, logs = observer.New(zapcore.InfoLevel)
		response   = httptest.NewRecorder()
		request    = httptest.NewRequest("POST", "/api/token/refresh/", nil)

		handler = alice.New(PopulateLogger(zap.New(core)), AccessLog()).ThenFunc(func(response http.ResponseWriter, _ *http.Request) {
			response.WriteHeader(http.StatusUnauthorized)
			response.Write([]byte("denied"))
		})
	)

	request.Header.Set(RequestIDHeader, "request-1")
	handler.ServeHTTP(response, request)

	require.Equal(1, logs.Len())
	entry := logs.All()[0]
	fields := entry.ContextMap()

	assert.Equal("request completed", entry.Message)
	assert.Equal("request-1", fields[requestIDKey])
	assert.Equal("POST", fields[requestMethodKey])
	assert.Equal(int64(http.StatusUnauthorized), fields["status"])
	assert.Equal(int64(6), fields["bytes"])
}
