// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"time"

	"github.com/xmidt-org/cama/xhttp"
)

// Options configures every server camad runs.  It is normally unmarshaled
// from the "servers" configuration key.
type Options struct {
	Primary xhttp.ServerOptions
	Metrics xhttp.ServerOptions

	// Pprof is only started when its Address is set
	Pprof xhttp.ServerOptions

	// HealthInterval is how often health statistics are refreshed and dispatched
	HealthInterval time.Duration

	// MaxConcurrentRequests bounds the API requests served at once.  Nonpositive means unbounded.
	MaxConcurrentRequests int

	// RequestTimeout is the deadline placed on each API request's context
	RequestTimeout time.Duration
}

// withDefaults fills in the bind addresses of the primary and metrics servers
func (o Options) withDefaults() Options {
	if len(o.Primary.Address) == 0 {
		o.Primary.Address = DefaultPrimaryAddress
	}

	if len(o.Metrics.Address) == 0 {
		o.Metrics.Address = DefaultMetricsAddress
	}

	return o
}
