// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package unixhttp

import (
	"net/http"
	"strconv"
	"strings"
)

// StatusCodeError indicates that a request reached the peer and produced a
// response outside the 2xx range.  The response body is retained so that
// callers can inspect whatever diagnostic payload the peer returned.
type StatusCodeError struct {
	// Code is the HTTP status code of the response.
	Code int

	// Body is the fully drained response body.  May be empty.
	Body []byte
}

// Error describes the unexpected status code.
func (sce *StatusCodeError) Error() string {
	var o strings.Builder
	o.WriteString("unexpected status code ")
	o.WriteString(strconv.Itoa(sce.Code))

	if text := http.StatusText(sce.Code); len(text) > 0 {
		o.WriteRune(' ')
		o.WriteString(text)
	}

	return o.String()
}

// StatusCode returns the HTTP status code associated with this error.
func (sce *StatusCodeError) StatusCode() int {
	return sce.Code
}

// JSONDecodeError indicates that a successful response carried a body that
// could not be unmarshaled into the caller's type.  The raw body is
// retained for diagnosis.
type JSONDecodeError struct {
	// Body is the response body that failed to decode.
	Body []byte

	// Err is the underlying unmarshaling error.
	Err error
}

// Error describes the decoding failure.
func (jde *JSONDecodeError) Error() string {
	var o strings.Builder
	o.WriteString("unable to decode JSON response body: ")
	o.WriteString(jde.Err.Error())

	return o.String()
}

// Unwrap returns the underlying unmarshaling error.
func (jde *JSONDecodeError) Unwrap() error {
	return jde.Err
}
