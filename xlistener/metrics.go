// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xlistener

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	"github.com/xmidt-org/cama/xmetrics"
)

const (
	RejectedConnectionsCounter = "rejected_connections"
	ActiveConnectionsGauge     = "active_connections"

	ServerLabel = "server"
)

// Metrics returns the Metrics relevant to this package
func Metrics() []xmetrics.Metric {
	return []xmetrics.Metric{
		{
			Name:       RejectedConnectionsCounter,
			Type:       xmetrics.CounterType,
			Help:       "Connections closed because a server was at its connection limit",
			LabelNames: []string{ServerLabel},
		},
		{
			Name:       ActiveConnectionsGauge,
			Type:       xmetrics.GaugeType,
			Help:       "Connections currently open on a server",
			LabelNames: []string{ServerLabel},
		},
	}
}

// Measures holds the listener metrics shared by every server
type Measures struct {
	Rejected metrics.Counter
	Active   metrics.Gauge
}

// NewMeasures realizes the listener metrics from a registry
func NewMeasures(r *xmetrics.Registry) *Measures {
	return &Measures{
		Rejected: r.NewCounter(RejectedConnectionsCounter),
		Active:   r.NewGauge(ActiveConnectionsGauge),
	}
}

// For returns the metrics labeled for the given server.  A nil Measures yields discards.
func (m *Measures) For(server string) (metrics.Counter, metrics.Gauge) {
	if m == nil {
		return discard.NewCounter(), discard.NewGauge()
	}

	return m.Rejected.With(ServerLabel, server), m.Active.With(ServerLabel, server)
}
