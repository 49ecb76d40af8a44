// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package secure

import (
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
)

const (
	AccessTokenType  = "access"
	RefreshTokenType = "refresh"

	TokenTypeClaim = "token_type"
	UserIDClaim    = "user_id"
	IsAdminClaim   = "is_admin"
	JTIClaim       = "jti"
	ExpClaim       = "exp"
	IatClaim       = "iat"
	IssClaim       = "iss"
)

// Subject is the identity a token pair is issued for
type Subject struct {
	UserID  string
	IsAdmin bool
}

// Claims is the verified content of an access or refresh token
type Claims struct {
	TokenType string `json:"token_type"`
	UserID    string `json:"user_id"`
	IsAdmin   bool   `json:"is_admin"`
	JTI       string `json:"jti"`
	ExpiresAt int64  `json:"exp"`
	IssuedAt  int64  `json:"iat"`
	Issuer    string `json:"iss,omitempty"`
}

// Subject returns the identity these claims were issued for
func (c *Claims) Subject() Subject {
	return Subject{UserID: c.UserID, IsAdmin: c.IsAdmin}
}

// Expiry returns the exp claim as a time
func (c *Claims) Expiry() time.Time {
	return time.Unix(c.ExpiresAt, 0)
}

func (c *Claims) mapClaims() jwt.MapClaims {
	m := jwt.MapClaims{
		TokenTypeClaim: c.TokenType,
		UserIDClaim:    c.UserID,
		IsAdminClaim:   c.IsAdmin,
		JTIClaim:       c.JTI,
		ExpClaim:       c.ExpiresAt,
		IatClaim:       c.IssuedAt,
	}

	if len(c.Issuer) > 0 {
		m[IssClaim] = c.Issuer
	}

	return m
}

// claimsFromMap coerces decoded JSON claims.  Numeric user ids and string booleans
// produced by other issuers are accepted.
func claimsFromMap(m jwt.MapClaims) (*Claims, error) {
	var (
		c   = new(Claims)
		err error
	)

	if c.TokenType, err = cast.ToStringE(m[TokenTypeClaim]); err != nil {
		return nil, errors.Wrap(err, TokenTypeClaim)
	}

	if c.UserID, err = cast.ToStringE(m[UserIDClaim]); err != nil {
		return nil, errors.Wrap(err, UserIDClaim)
	}

	if c.IsAdmin, err = cast.ToBoolE(m[IsAdminClaim]); err != nil {
		return nil, errors.Wrap(err, IsAdminClaim)
	}

	if c.JTI, err = cast.ToStringE(m[JTIClaim]); err != nil {
		return nil, errors.Wrap(err, JTIClaim)
	}

	if c.ExpiresAt, err = cast.ToInt64E(m[ExpClaim]); err != nil {
		return nil, errors.Wrap(err, ExpClaim)
	}

	if c.IssuedAt, err = cast.ToInt64E(m[IatClaim]); err != nil {
		return nil, errors.Wrap(err, IatClaim)
	}

	if c.Issuer, err = cast.ToStringE(m[IssClaim]); err != nil {
		return nil, errors.Wrap(err, IssClaim)
	}

	return c, nil
}
