// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package secure

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

// AuthorizationHeader carries credentials on every authenticated request
const AuthorizationHeader = "Authorization"

// ErrInvalidAuthorization is the cause of every Authorization parsing failure
var ErrInvalidAuthorization = errors.New("invalid authorization")

// TokenType is the scheme of an Authorization value
type TokenType int

const (
	Invalid TokenType = iota
	Basic
	Bearer
)

// String returns the scheme as it appears on the wire
func (tt TokenType) String() string {
	switch tt {
	case Invalid:
		return "!! INVALID !!"
	case Basic:
		return "Basic"
	case Bearer:
		return "Bearer"
	default:
		return "Unknown"
	}
}

// ParseTokenType returns the TokenType for a scheme, ignoring case
func ParseTokenType(value string) (TokenType, error) {
	for _, tt := range [...]TokenType{Basic, Bearer} {
		if strings.EqualFold(tt.String(), value) {
			return tt, nil
		}
	}

	return Invalid, errors.WithMessagef(ErrInvalidAuthorization, "unsupported scheme %q", value)
}

// Token is the result of parsing an Authorization value
type Token struct {
	tokenType TokenType
	value     string
}

// String returns the token as it would appear in an Authorization header
func (t *Token) String() string {
	return t.tokenType.String() + " " + t.value
}

func (t *Token) Type() TokenType {
	return t.tokenType
}

func (t *Token) Value() string {
	return t.value
}

// ParseAuthorization splits an Authorization value into its scheme and credentials.
// Whitespace between the two is ignored, and the credentials must not be empty.
func ParseAuthorization(value string) (*Token, error) {
	scheme, credentials, ok := strings.Cut(strings.TrimSpace(value), " ")
	credentials = strings.TrimSpace(credentials)
	if !ok || len(credentials) == 0 {
		return nil, errors.WithMessage(ErrInvalidAuthorization, "expected a scheme followed by credentials")
	}

	tokenType, err := ParseTokenType(scheme)
	if err != nil {
		return nil, err
	}

	return &Token{
		tokenType: tokenType,
		value:     credentials,
	}, nil
}

// NewToken parses the request's Authorization header.  A request without
// that header yields a nil Token and no error.
func NewToken(request *http.Request) (*Token, error) {
	value := request.Header.Get(AuthorizationHeader)
	if len(value) == 0 {
		return nil, nil
	}

	return ParseAuthorization(value)
}
