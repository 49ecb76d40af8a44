// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package route describes an HTTP surface as an ordered Table of routes.  Tables from
separate packages are mounted under a prefix with Include and realized as a single
gorilla/mux router with Build.  Registration order is preserved, so the first route
whose path and method match a request handles it.
*/
package route
