// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package secure

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	"github.com/xmidt-org/cama/xmetrics"
)

// Names for our metrics
const (
	JWTValidationReasonCounter = "jwt_validation_reason"
	TokenRefreshOutcomeCounter = "token_refresh_outcome"
)

// labels
const (
	ReasonLabel  = "reason"
	OutcomeLabel = "outcome"
)

// validation reasons
const (
	AcceptedReason      = "accepted"
	MissingHeaderReason = "missing_header"
	InvalidHeaderReason = "invalid_header"
	NotBearerReason     = "not_bearer"
	ExpiredReason       = "expired"
	WrongTypeReason     = "wrong_type"
	BlacklistedReason   = "blacklisted"
	InvalidReason       = "invalid"
)

// refresh outcomes
const (
	IssuedOutcome   = "issued"
	RotatedOutcome  = "rotated"
	RejectedOutcome = "rejected"
)

// Metrics returns the Metrics relevant to this package
func Metrics() []xmetrics.Metric {
	return []xmetrics.Metric{
		{
			Name:       JWTValidationReasonCounter,
			Type:       xmetrics.CounterType,
			Help:       "Counter for validation resolutions per reason",
			LabelNames: []string{ReasonLabel},
		},
		{
			Name:       TokenRefreshOutcomeCounter,
			Type:       xmetrics.CounterType,
			Help:       "Counter for token refresh attempts per outcome",
			LabelNames: []string{OutcomeLabel},
		},
	}
}

// Measures describes the defined metrics that will be used by clients
type Measures struct {
	ValidationReason metrics.Counter
	RefreshOutcome   metrics.Counter
}

// NewMeasures realizes desired metrics
func NewMeasures(r *xmetrics.Registry) *Measures {
	return &Measures{
		ValidationReason: r.NewCounter(JWTValidationReasonCounter),
		RefreshOutcome:   r.NewCounter(TokenRefreshOutcomeCounter),
	}
}

// NopMeasures returns Measures that discard everything
func NopMeasures() *Measures {
	return &Measures{
		ValidationReason: discard.NewCounter(),
		RefreshOutcome:   discard.NewCounter(),
	}
}
