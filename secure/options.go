// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package secure

import (
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/pkg/errors"
)

const (
	DefaultAlgorithm       = "HS256"
	DefaultAccessLifetime  = 5 * time.Minute
	DefaultRefreshLifetime = 24 * time.Hour
)

var ErrNoSigningKey = errors.New("a signing key is required")

// Options is the configuration for issuing and verifying tokens.  It is normally
// unmarshaled from the "token" configuration key.
type Options struct {
	// SigningKey is the shared HMAC secret.  This value is required.
	SigningKey string

	// Algorithm is one of HS256, HS384, or HS512.  Defaults to DefaultAlgorithm.
	Algorithm string

	// Issuer is written to the iss claim.  When set, tokens with a different iss are rejected.
	Issuer string

	AccessLifetime  time.Duration
	RefreshLifetime time.Duration

	// RotateRefreshTokens causes a refresh to return a new refresh token along with the access token.
	RotateRefreshTokens bool

	// BlacklistAfterRotation blacklists a refresh token once it has been rotated.  Only
	// meaningful when RotateRefreshTokens is set.
	BlacklistAfterRotation bool

	// Leeway is the clock skew allowed when checking exp.
	Leeway time.Duration
}

func (o Options) accessLifetime() time.Duration {
	if o.AccessLifetime > 0 {
		return o.AccessLifetime
	}

	return DefaultAccessLifetime
}

func (o Options) refreshLifetime() time.Duration {
	if o.RefreshLifetime > 0 {
		return o.RefreshLifetime
	}

	return DefaultRefreshLifetime
}

// signingMethod resolves the configured algorithm.  Only the HMAC family is supported,
// since the signing key is a shared secret.
func (o Options) signingMethod() (*jwt.SigningMethodHMAC, error) {
	alg := o.Algorithm
	if len(alg) == 0 {
		alg = DefaultAlgorithm
	}

	if method, ok := jwt.GetSigningMethod(alg).(*jwt.SigningMethodHMAC); ok {
		return method, nil
	}

	return nil, errors.Errorf("unsupported signing algorithm: %s", alg)
}
