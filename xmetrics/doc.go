// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package xmetrics provides configurability for Prometheus-based metrics.  Metrics are
described up front with Metric descriptors and preregistered in a Registry.  The more
general go-kit interfaces are handed out to domain code wherever possible.
*/
package xmetrics
