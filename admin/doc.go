// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package admin provides the administrative site mounted under /admin/.  Every route
requires an authorized admin token.
*/
package admin
