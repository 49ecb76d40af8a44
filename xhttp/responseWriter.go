// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xhttp

import (
	"bufio"
	"errors"
	"net"
	"net/http"
)

// WrapResponseWriter returns a *ResponseWriter which wraps the given http.ResponseWriter.
// An already wrapped writer is returned as is, so decorators may wrap freely.
func WrapResponseWriter(delegate http.ResponseWriter) *ResponseWriter {
	if rw, ok := delegate.(*ResponseWriter); ok {
		return rw
	}

	return &ResponseWriter{
		ResponseWriter: delegate,
	}
}

// ResponseWriter is a wrapper type for an http.ResponseWriter that exposes the status code
// and the number of body bytes written.
type ResponseWriter struct {
	http.ResponseWriter
	statusCode int
	written    int64
}

// StatusCode returns the status written so far.  A handler that writes a body without
// calling WriteHeader has implicitly written http.StatusOK.
func (r *ResponseWriter) StatusCode() int {
	if r.statusCode == 0 {
		return http.StatusOK
	}

	return r.statusCode
}

// Written returns the count of body bytes written through this wrapper
func (r *ResponseWriter) Written() int64 {
	return r.written
}

func (r *ResponseWriter) WriteHeader(statusCode int) {
	if r.statusCode == 0 {
		r.statusCode = statusCode
	}

	r.ResponseWriter.WriteHeader(statusCode)
}

func (r *ResponseWriter) Write(b []byte) (int, error) {
	if r.statusCode == 0 {
		r.statusCode = http.StatusOK
	}

	n, err := r.ResponseWriter.Write(b)
	r.written += int64(n)
	return n, err
}

// Hijack delegates to the wrapped ResponseWriter, returning an error if the delegate does
// not implement http.Hijacker.
func (r *ResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if hijacker, ok := r.ResponseWriter.(http.Hijacker); ok {
		return hijacker.Hijack()
	}

	return nil, nil, errors.New("wrapped response does not implement http.Hijacker")
}

// Flush delegates to the wrapped ResponseWriter.  If the delegate ResponseWriter does not
// implement http.Flusher, this method does nothing.
func (r *ResponseWriter) Flush() {
	if flusher, ok := r.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}
