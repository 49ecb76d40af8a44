// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package health provides a simple heartbeat strategy for the CAMA backend.  A Health
monitor owns a Stats map that is only ever touched from its own event goroutine.
Request counters are fed by RequestTracker and memory figures are refreshed from the
Go runtime and, on Linux, /proc/meminfo.
*/
package health
