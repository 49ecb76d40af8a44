// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package httperror

import (
	"encoding/json"
	"net/http"
)

const (
	// DefaultStatus is the response status code used when the error's code
	// is less than http.StatusBadRequest (400), i.e. when the code is not
	// an HTTP error code.
	DefaultStatus = http.StatusInternalServerError

	// ContentType is the Content-Type of every body written by this package
	ContentType = "application/json; charset=UTF-8"
)

// Interface represents an HTTP-specific error with additional metadata
// for the response.
type Interface interface {
	error
	Status() int
	Header() http.Header
}

// httpError is the internal implementation of Interface
type httpError struct {
	message string
	status  int
	header  http.Header
}

func (err *httpError) Error() string {
	return err.message
}

func (err *httpError) Status() int {
	return err.status
}

func (err *httpError) Header() http.Header {
	return err.header
}

// New returns an error containing the given internal metadata.  This constructor is appropriate
// for infrastructure that needs to return HTTP metadata about an error from code not directly
// part of an HTTP handler.
//
// For code that has access to the http.ResponseWriter, use WriteMessage instead
func New(message string, status int, header http.Header) Interface {
	if status < http.StatusBadRequest {
		status = DefaultStatus
	}

	return &httpError{
		message: message,
		status:  status,
		header:  header,
	}
}

// Write handles writing the given error to the response, taking care
// of the response status and any output headers.  Errors that are not
// an Interface are written with DefaultStatus.
func Write(response http.ResponseWriter, err error) error {
	if httpError, ok := err.(Interface); ok {
		return WriteMessage(response, httpError.Error(), httpError.Status(), httpError.Header())
	}

	return WriteMessage(response, err.Error(), DefaultStatus, nil)
}

// WriteMessage handles writing full error message information out to a response as
// the JSON document {"message": "..."}.
//
// If status is not an HTTP error code, DefaultStatus is used.  The header is optional, and can be nil.
func WriteMessage(response http.ResponseWriter, message string, status int, header http.Header) error {
	return WriteBody(response, status, header, map[string]string{"message": message})
}

// WriteBody writes an arbitrary JSON error document.  Handlers that must honor an
// established wire format, e.g. field validation maps, use this instead of WriteMessage.
func WriteBody(response http.ResponseWriter, status int, header http.Header, body interface{}) error {
	if status < http.StatusBadRequest {
		status = DefaultStatus
	}

	for key, values := range header {
		for _, value := range values {
			response.Header().Add(key, value)
		}
	}

	response.Header().Set("Content-Type", ContentType)
	response.Header().Set("X-Content-Type-Options", "nosniff")
	response.WriteHeader(status)

	return json.NewEncoder(response).Encode(body)
}
