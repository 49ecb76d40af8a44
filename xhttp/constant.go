// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xhttp

import "net/http"

// TextContentType is the Content-Type written by Text constants
const TextContentType = "text/plain; charset=utf-8"

// Constant represents an http.Handler that writes prebuilt, constant information to the response writer.
// Liveness endpoints are the typical use: the response never depends on the request.
type Constant struct {
	Code   int
	Header http.Header
	Body   []byte
}

// Text produces a Constant that writes the given body as plain text.
func Text(code int, body string) Constant {
	return Constant{
		Code:   code,
		Header: http.Header{"Content-Type": {TextContentType}},
		Body:   []byte(body),
	}
}

// ServeHTTP simply writes the configured information out to the response.
// HEAD requests receive the status and headers only.
func (c Constant) ServeHTTP(response http.ResponseWriter, request *http.Request) {
	for k, values := range c.Header {
		for _, v := range values {
			response.Header().Add(k, v)
		}
	}

	response.WriteHeader(c.Code)
	if len(c.Body) > 0 && request.Method != http.MethodHead {
		response.Write(c.Body)
	}
}
