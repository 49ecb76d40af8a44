// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package server runs the HTTP servers of camad under an fx lifecycle: the primary
API server, the metrics server, and the optional pprof server.  The health monitor
is bound to the same lifecycle.
*/
package server
