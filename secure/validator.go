// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package secure

import (
	"context"

	"github.com/pkg/errors"
)

var ErrNotBearer = errors.New("only bearer tokens are supported")

// Validator describes the behavior of a type which can validate tokens.  A token is
// valid if and only if the returned error is nil, in which case the claims are non-nil.
type Validator interface {
	Validate(context.Context, *Token) (*Claims, error)
}

// ValidatorFunc is a function type that implements Validator
type ValidatorFunc func(context.Context, *Token) (*Claims, error)

func (v ValidatorFunc) Validate(ctx context.Context, token *Token) (*Claims, error) {
	return v(ctx, token)
}

// JWTValidator accepts Bearer access tokens signed by an Issuer
type JWTValidator struct {
	Issuer   *Issuer
	Measures *Measures
}

func (v JWTValidator) Validate(_ context.Context, token *Token) (*Claims, error) {
	var (
		claims *Claims
		err    error
	)

	if token.Type() != Bearer {
		err = ErrNotBearer
	} else {
		claims, err = v.Issuer.ParseAccess(token.Value())
	}

	if v.Measures != nil {
		v.Measures.ValidationReason.With(ReasonLabel, Reason(err)).Add(1)
	}

	return claims, err
}

// Reason maps a validation result onto the jwt_validation_reason label
func Reason(err error) string {
	switch {
	case err == nil:
		return AcceptedReason
	case errors.Is(err, ErrNotBearer):
		return NotBearerReason
	case errors.Is(err, ErrTokenExpired):
		return ExpiredReason
	case errors.Is(err, ErrWrongTokenType):
		return WrongTypeReason
	case errors.Is(err, ErrTokenBlacklisted):
		return BlacklistedReason
	default:
		return InvalidReason
	}
}
