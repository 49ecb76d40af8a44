// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package study implements the CAMA study API: the Study model, the Store it is kept
in, and the route table mounted under /api.
*/
package study
