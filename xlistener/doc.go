// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package xlistener decorates net.Listener with connection limits and connection metrics.
*/
package xlistener
