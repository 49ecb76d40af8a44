// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package server

const (
	// DefaultPrimaryAddress is the bind address of the API server
	DefaultPrimaryAddress = ":8000"

	// DefaultMetricsAddress is the bind address of the prometheus scrape server
	DefaultMetricsAddress = ":9361"

	// PrimaryName, MetricsName, and PprofName label each server in logs
	PrimaryName = "primary"
	MetricsName = "metrics"
	PprofName   = "pprof"
)
