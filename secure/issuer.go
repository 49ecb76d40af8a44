// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package secure

import (
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/pkg/errors"
	"github.com/segmentio/ksuid"
	"github.com/xmidt-org/cama/clock"
)

var (
	ErrTokenInvalid     = errors.New("token is invalid")
	ErrTokenExpired     = errors.New("token is expired")
	ErrWrongTokenType   = errors.New("token has wrong type")
	ErrTokenBlacklisted = errors.New("token is blacklisted")
)

// Pair is the JSON body returned by token endpoints.  Refresh is only populated
// when a refresh token was (re)issued.
type Pair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh,omitempty"`
}

// Issuer signs and verifies the service's access and refresh tokens
type Issuer struct {
	options   Options
	method    *jwt.SigningMethodHMAC
	key       []byte
	clock     clock.Interface
	blacklist *Blacklist
	measures  *Measures
}

// NewIssuer validates the options and produces an Issuer.  A nil clock means the system clock,
// and nil measures discard all metrics.
func NewIssuer(o Options, c clock.Interface, m *Measures) (*Issuer, error) {
	if len(o.SigningKey) == 0 {
		return nil, ErrNoSigningKey
	}

	method, err := o.signingMethod()
	if err != nil {
		return nil, err
	}

	if c == nil {
		c = clock.System()
	}

	if m == nil {
		m = NopMeasures()
	}

	return &Issuer{
		options:   o,
		method:    method,
		key:       []byte(o.SigningKey),
		clock:     c,
		blacklist: NewBlacklist(),
		measures:  m,
	}, nil
}

// Blacklist exposes the rotated refresh token ids
func (i *Issuer) Blacklist() *Blacklist {
	return i.blacklist
}

func (i *Issuer) sign(s Subject, tokenType string, lifetime time.Duration, now time.Time) (string, error) {
	c := Claims{
		TokenType: tokenType,
		UserID:    s.UserID,
		IsAdmin:   s.IsAdmin,
		JTI:       ksuid.New().String(),
		ExpiresAt: now.Add(lifetime).Unix(),
		IssuedAt:  now.Unix(),
		Issuer:    i.options.Issuer,
	}

	signed, err := jwt.NewWithClaims(i.method, c.mapClaims()).SignedString(i.key)
	return signed, errors.Wrapf(err, "unable to sign %s token", tokenType)
}

// IssuePair creates a fresh access and refresh token for a subject
func (i *Issuer) IssuePair(s Subject) (Pair, error) {
	now := i.clock.Now()
	access, err := i.sign(s, AccessTokenType, i.options.accessLifetime(), now)
	if err != nil {
		return Pair{}, err
	}

	refresh, err := i.sign(s, RefreshTokenType, i.options.refreshLifetime(), now)
	if err != nil {
		return Pair{}, err
	}

	return Pair{Access: access, Refresh: refresh}, nil
}

// parse verifies the signature and the registered claims of raw, which must be of tokenType
func (i *Issuer) parse(raw, tokenType string, now time.Time) (*Claims, error) {
	parser := jwt.Parser{
		ValidMethods:         []string{i.method.Alg()},
		SkipClaimsValidation: true,
	}

	m := jwt.MapClaims{}
	if _, err := parser.ParseWithClaims(raw, m, func(*jwt.Token) (interface{}, error) { return i.key, nil }); err != nil {
		return nil, errors.WithMessage(ErrTokenInvalid, err.Error())
	}

	c, err := claimsFromMap(m)
	if err != nil {
		return nil, errors.WithMessage(ErrTokenInvalid, err.Error())
	}

	switch {
	case c.ExpiresAt == 0 || len(c.JTI) == 0:
		return nil, errors.WithMessage(ErrTokenInvalid, "missing registered claims")

	case len(i.options.Issuer) > 0 && c.Issuer != i.options.Issuer:
		return nil, errors.WithMessagef(ErrTokenInvalid, "unexpected issuer %q", c.Issuer)

	case !now.Before(c.Expiry().Add(i.options.Leeway)):
		return nil, ErrTokenExpired

	case c.TokenType != tokenType:
		return nil, ErrWrongTokenType
	}

	return c, nil
}

// ParseAccess verifies an access token and returns its claims
func (i *Issuer) ParseAccess(raw string) (*Claims, error) {
	return i.parse(raw, AccessTokenType, i.clock.Now())
}

// Refresh exchanges a refresh token for a new access token.  With rotation enabled the
// result also carries a new refresh token, and with blacklisting enabled the presented
// refresh token cannot be used again.
func (i *Issuer) Refresh(raw string) (Pair, error) {
	pair, outcome, err := i.refresh(raw)
	i.measures.RefreshOutcome.With(OutcomeLabel, outcome).Add(1)
	return pair, err
}

func (i *Issuer) refresh(raw string) (Pair, string, error) {
	now := i.clock.Now()
	c, err := i.parse(raw, RefreshTokenType, now)
	if err != nil {
		return Pair{}, RejectedOutcome, err
	}

	// a token that rotation will consume is claimed before anything is signed
	consume := i.options.RotateRefreshTokens && i.options.BlacklistAfterRotation
	if consume {
		if !i.blacklist.AddIfAbsent(c.JTI, c.Expiry().Add(i.options.Leeway), now) {
			return Pair{}, RejectedOutcome, ErrTokenBlacklisted
		}
	} else if i.blacklist.Contains(c.JTI, now) {
		return Pair{}, RejectedOutcome, ErrTokenBlacklisted
	}

	access, err := i.sign(c.Subject(), AccessTokenType, i.options.accessLifetime(), now)
	if err != nil {
		return Pair{}, RejectedOutcome, err
	}

	if !i.options.RotateRefreshTokens {
		return Pair{Access: access}, IssuedOutcome, nil
	}

	refresh, err := i.sign(c.Subject(), RefreshTokenType, i.options.refreshLifetime(), now)
	if err != nil {
		return Pair{}, RejectedOutcome, err
	}

	return Pair{Access: access, Refresh: refresh}, RotatedOutcome, nil
}
