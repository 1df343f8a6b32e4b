// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package unixhttp

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
)

const jsonContentType = "application/json"

// DoJSON sends a request whose response body, if any, is unmarshaled into
// Out.  An Accept header of "application/json" is set when the caller
// supplied none.
//
// Non-2xx responses are returned as a *StatusCodeError carrying the raw
// body, exactly as with Client.Do; no decode into Out is attempted.  A 2xx
// response with an empty body yields the zero value of Out.  A 2xx body
// that fails to unmarshal yields a *JSONDecodeError.
func DoJSON[Out any](ctx context.Context, c *Client, method, endpoint string, header http.Header, body io.Reader) (int, Out, error) {
	var out Out

	header = cloneHeader(header)
	if len(header.Values("Accept")) == 0 {
		header.Set("Accept", jsonContentType)
	}

	status, b, err := c.Do(ctx, method, endpoint, header, body)
	if err != nil {
		return status, out, err
	}

	if len(b) > 0 {
		if err := json.Unmarshal(b, &out); err != nil {
			return status, out, &JSONDecodeError{
				Body: b,
				Err:  err,
			}
		}
	}

	return status, out, nil
}

// GetJSON issues a GET request and decodes the response body into Out.
func GetJSON[Out any](ctx context.Context, c *Client, endpoint string, header http.Header) (int, Out, error) {
	return DoJSON[Out](ctx, c, http.MethodGet, endpoint, header, nil)
}

// DeleteJSON issues a DELETE request and decodes the response body into Out.
func DeleteJSON[Out any](ctx context.Context, c *Client, endpoint string, header http.Header) (int, Out, error) {
	return DoJSON[Out](ctx, c, http.MethodDelete, endpoint, header, nil)
}

// PostJSON issues a POST request with in encoded as the JSON request body,
// decoding the response body into Out.  The Content-Type header is set to
// "application/json".
func PostJSON[In, Out any](ctx context.Context, c *Client, endpoint string, header http.Header, in In) (int, Out, error) {
	return sendJSON[In, Out](ctx, c, http.MethodPost, endpoint, header, in)
}

// PutJSON issues a PUT request with in encoded as the JSON request body,
// decoding the response body into Out.
func PutJSON[In, Out any](ctx context.Context, c *Client, endpoint string, header http.Header, in In) (int, Out, error) {
	return sendJSON[In, Out](ctx, c, http.MethodPut, endpoint, header, in)
}

func sendJSON[In, Out any](ctx context.Context, c *Client, method, endpoint string, header http.Header, in In) (int, Out, error) {
	b, err := json.Marshal(in)
	if err != nil {
		var out Out
		return 0, out, err
	}

	header = cloneHeader(header)
	header.Set("Content-Type", jsonContentType)

	return DoJSON[Out](ctx, c, method, endpoint, header, bytes.NewReader(b))
}

// cloneHeader deep copies a header so that the JSON helpers can set
// content negotiation headers without mutating the caller's map.
func cloneHeader(src http.Header) http.Header {
	dst := make(http.Header, len(src)+2)
	for key, values := range src {
		dst[http.CanonicalHeaderKey(key)] = append([]string{}, values...)
	}

	return dst
}
