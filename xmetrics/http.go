// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xmetrics

import (
	"net/http"

	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	APIRequestsTotal       = "api_requests_total"
	InFlightRequests       = "in_flight_requests"
	RequestDurationSeconds = "request_duration_seconds"

	CodeLabel   = "code"
	MethodLabel = "method"
)

// RequestMetrics is the Module describing the per-request HTTP metrics
func RequestMetrics() []Metric {
	return []Metric{
		{
			Name:       APIRequestsTotal,
			Type:       CounterType,
			Help:       "A counter for requests to the wrapped handler.",
			LabelNames: []string{CodeLabel, MethodLabel},
		},
		{
			Name: InFlightRequests,
			Type: GaugeType,
			Help: "A gauge of requests currently being served by the wrapped handler.",
		},
		{
			Name:       RequestDurationSeconds,
			Type:       HistogramType,
			Help:       "A histogram of latencies for requests.",
			Buckets:    prometheus.DefBuckets,
			LabelNames: []string{CodeLabel, MethodLabel},
		},
	}
}

// InstrumentHandler produces a constructor that records RequestMetrics for every request
// passing through the decorated handler.  The registry must have been created with RequestMetrics.
func InstrumentHandler(r *Registry) alice.Constructor {
	var (
		counter  = r.CounterVec(APIRequestsTotal)
		inFlight = r.GaugeVec(InFlightRequests).WithLabelValues()
		duration = r.HistogramVec(RequestDurationSeconds)
	)

	return func(next http.Handler) http.Handler {
		return promhttp.InstrumentHandlerInFlight(
			inFlight,
			promhttp.InstrumentHandlerDuration(
				duration,
				promhttp.InstrumentHandlerCounter(counter, next),
			),
		)
	}
}
