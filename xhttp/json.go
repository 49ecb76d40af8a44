// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xhttp

import (
	"encoding/json"
	"net/http"
)

// JSONContentType is the Content-Type of every JSON body written by this package
const JSONContentType = "application/json; charset=UTF-8"

// WriteJSON writes value as the JSON body of a response with the given status code.
// Use httperror for error bodies.
func WriteJSON(response http.ResponseWriter, code int, value interface{}) error {
	response.Header().Set("Content-Type", JSONContentType)
	response.WriteHeader(code)
	return json.NewEncoder(response).Encode(value)
}
