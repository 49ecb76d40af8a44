// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xmidt-org/cama/secure"
)

func testDecorateMissingHeader(t *testing.T) {
	var (
		assert    = assert.New(t)
		validator = new(mockValidator)
		delegate  = new(mockHttpHandler)

		handler  = AuthorizationHandler{Validator: validator, Measures: secure.NopMeasures()}.Decorate(delegate)
		response = httptest.NewRecorder()
	)

	handler.ServeHTTP(response, httptest.NewRequest("GET", "/api/studies/all", nil))
	assert.Equal(http.StatusUnauthorized, response.Code)
	assert.Equal(`Bearer realm="api"`, response.Header().Get("WWW-Authenticate"))
	assert.JSONEq(`{"message": "Authentication credentials were not provided."}`, response.Body.String())

	validator.AssertExpectations(t)
	delegate.AssertExpectations(t)
}

func testDecorateMalformedHeader(t *testing.T) {
	var (
		assert    = assert.New(t)
		validator = new(mockValidator)
		delegate  = new(mockHttpHandler)

		handler  = AuthorizationHandler{Validator: validator}.Decorate(delegate)
		request  = httptest.NewRequest("GET", "/api/studies/all", nil)
		response = httptest.NewRecorder()
	)

	request.Header.Set("Authorization", "Token abcdef")
	handler.ServeHTTP(response, request)
	assert.Equal(http.StatusUnauthorized, response.Code)
	assert.JSONEq(`{"message": "Authorization header is malformed."}`, response.Body.String())

	validator.AssertExpectations(t)
	delegate.AssertExpectations(t)
}

func testDecorateRejected(t *testing.T) {
	var (
		assert    = assert.New(t)
		validator = new(mockValidator)
		delegate  = new(mockHttpHandler)

		handler  = AuthorizationHandler{Validator: validator}.Decorate(delegate)
		request  = httptest.NewRequest("GET", "/api/studies/all", nil)
		response = httptest.NewRecorder()
	)

	request.Header.Set("Authorization", "Bearer expired")
	validator.On("Validate", mock.Anything, mock.MatchedBy(func(token *secure.Token) bool {
		return token.Type() == secure.Bearer && token.Value() == "expired"
	})).Return(nil, secure.ErrTokenExpired).Once()

	handler.ServeHTTP(response, request)
	assert.Equal(http.StatusUnauthorized, response.Code)
	assert.JSONEq(`{"detail": "Token is invalid or expired", "code": "token_not_valid"}`, response.Body.String())

	validator.AssertExpectations(t)
	delegate.AssertExpectations(t)
}

func testDecorateAccepted(t *testing.T) {
	var (
		assert    = assert.New(t)
		validator = new(mockValidator)
		delegate  = new(mockHttpHandler)
		claims    = &secure.Claims{UserID: "0000-0001", TokenType: secure.AccessTokenType}

		handler  = AuthorizationHandler{HeaderName: "X-Auth", Validator: validator}.Decorate(delegate)
		request  = httptest.NewRequest("POST", "/api/studies/all", nil)
		response = httptest.NewRecorder()
	)

	request.Header.Set("X-Auth", "Bearer good")
	validator.On("Validate", mock.Anything, mock.AnythingOfType("*secure.Token")).Return(claims, nil).Once()
	delegate.On("ServeHTTP", response, mock.MatchedBy(func(r *http.Request) bool {
		values, ok := FromContext(r.Context())
		return ok && values.Claims == claims && values.Method == "POST" && values.Path == "/api/studies/all"
	})).Run(func(arguments mock.Arguments) {
		arguments.Get(0).(http.ResponseWriter).WriteHeader(http.StatusCreated)
	}).Once()

	handler.ServeHTTP(response, request)
	assert.Equal(http.StatusCreated, response.Code)

	validator.AssertExpectations(t)
	delegate.AssertExpectations(t)
}

func testDecorateOptional(t *testing.T) {
	var (
		assert    = assert.New(t)
		validator = new(mockValidator)
		delegate  = new(mockHttpHandler)

		handler  = AuthorizationHandler{Validator: validator, Optional: true}.Decorate(delegate)
		response = httptest.NewRecorder()
		request  = httptest.NewRequest("GET", "/api/studies/1/", nil)
	)

	delegate.On("ServeHTTP", response, request).Once()
	handler.ServeHTTP(response, request)

	bad := httptest.NewRequest("GET", "/api/studies/1/", nil)
	bad.Header.Set("Authorization", "garbage")
	rejected := httptest.NewRecorder()
	handler.ServeHTTP(rejected, bad)
	assert.Equal(http.StatusUnauthorized, rejected.Code)

	validator.AssertExpectations(t)
	delegate.AssertExpectations(t)
}

func TestAuthorizationHandler(t *testing.T) {
	t.Run("MissingHeader", testDecorateMissingHeader)
	t.Run("MalformedHeader", testDecorateMalformedHeader)
	t.Run("Rejected", testDecorateRejected)
	t.Run("Accepted", testDecorateAccepted)
	t.Run("Optional", testDecorateOptional)
}

func TestRequireAdmin(t *testing.T) {
	testData := []struct {
		name     string
		values   *ContextValues
		expected int
	}{
		{"NoClaims", nil, http.StatusUnauthorized},
		{"NotAdmin", &ContextValues{Claims: &secure.Claims{UserID: "u"}}, http.StatusForbidden},
		{"Admin", &ContextValues{Claims: &secure.Claims{UserID: "u", IsAdmin: true}}, http.StatusNoContent},
	}

	for _, record := range testData {
		t.Run(record.name, func(t *testing.T) {
			var (
				assert   = assert.New(t)
				request  = httptest.NewRequest("DELETE", "/api/studies/1/", nil)
				response = httptest.NewRecorder()
			)

			if record.values != nil {
				request = request.WithContext(NewContextWithValue(request.Context(), record.values))
			}

			RequireAdmin(nil)(http.HandlerFunc(func(response http.ResponseWriter, _ *http.Request) {
				response.WriteHeader(http.StatusNoContent)
			})).ServeHTTP(response, request)

			assert.Equal(record.expected, response.Code)
			if record.expected == http.StatusForbidden {
				assert.Contains(response.Body.String(), "You do not have permission")
			}
		})
	}
}

func TestRequireAdminDeniedHandler(t *testing.T) {
	var (
		assert  = assert.New(t)
		values  = &ContextValues{Claims: &secure.Claims{UserID: "u"}}
		denied  = http.HandlerFunc(func(response http.ResponseWriter, _ *http.Request) { response.WriteHeader(http.StatusTeapot) })
		invoked bool

		constructor = RequireAdmin(denied)
	)

	request := httptest.NewRequest("DELETE", "/api/studies/1/", nil)
	request = request.WithContext(NewContextWithValue(request.Context(), values))
	response := httptest.NewRecorder()

	constructor(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { invoked = true })).ServeHTTP(response, request)
	assert.False(invoked)
	assert.Equal(http.StatusTeapot, response.Code)

	// callers with no claims are still refused as unauthenticated
	response = httptest.NewRecorder()
	constructor(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { invoked = true })).ServeHTTP(response, httptest.NewRequest("DELETE", "/api/studies/1/", nil))
	assert.False(invoked)
	assert.Equal(http.StatusUnauthorized, response.Code)
}
