// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"context"
	"net/http"

	"github.com/stretchr/testify/mock"
	"github.com/xmidt-org/cama/secure"
)

type mockHttpHandler struct {
	mock.Mock
}

func (h *mockHttpHandler) ServeHTTP(response http.ResponseWriter, request *http.Request) {
	h.Called(response, request)
}

type mockValidator struct {
	mock.Mock
}

func (v *mockValidator) Validate(ctx context.Context, token *secure.Token) (*secure.Claims, error) {
	arguments := v.Called(ctx, token)
	claims, _ := arguments.Get(0).(*secure.Claims)
	return claims, arguments.Error(1)
}
