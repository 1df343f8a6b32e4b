// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package unixhttp

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/xmidt-org/unixaux"
)

// syntheticHost is the placeholder authority used when building request
// URLs.  A URL requires a host, but the transport's dialer ignores it and
// always connects to the configured socket path.
const syntheticHost = "unix"

// Client is an HTTP client addressed by endpoint path rather than URL.
// All requests are dialed against a single unix domain socket.
//
// A Client is safe for concurrent use.
type Client struct {
	path unixaux.SocketPath
	hc   *http.Client
}

// New constructs a Client for the given socket path.  The supplied options
// are applied to the underlying http.Client after construction.
func New(path string, opts ...ClientOption) (*Client, error) {
	return ClientConfig{
		Path: unixaux.SocketPath(path),
	}.NewUnixClient(opts...)
}

// Path returns the socket path this client dials.
func (c *Client) Path() unixaux.SocketPath {
	return c.path
}

// HTTPClient returns the underlying http.Client for callers that want
// stdlib request/response semantics.  Requests issued directly must use
// URLs of the form "http://unix/endpoint"; the host portion is a
// placeholder and is never resolved.
func (c *Client) HTTPClient() *http.Client {
	return c.hc
}

// Reconnect drops all pooled connections to the socket.  The next request
// dials fresh, which is useful after the peer has restarted.  In-flight
// requests are not interrupted.
func (c *Client) Reconnect() {
	c.hc.CloseIdleConnections()
}

// Close releases the client's idle connections.  The Client remains usable
// afterwards; subsequent requests will redial.
func (c *Client) Close() {
	c.hc.CloseIdleConnections()
}

// Do sends a single request to the socket and fully drains the response.
//
// The endpoint is the path portion of the request, e.g. "/status".  A
// missing leading slash is supplied.  The header may be nil, as may the
// body for methods that carry none.
//
// On a 2xx response, Do returns the status code, the response body, and a
// nil error.  A response outside the 2xx range returns the status code,
// the body, and a *StatusCodeError carrying both.  Failures to build or
// send the request return a zero status code and a nil body.
func (c *Client) Do(ctx context.Context, method, endpoint string, header http.Header, body io.Reader) (int, []byte, error) {
	request, err := http.NewRequestWithContext(ctx, method, requestURL(endpoint), body)
	if err != nil {
		return 0, nil, err
	}

	for key, values := range header {
		for _, v := range values {
			request.Header.Add(key, v)
		}
	}

	response, err := c.hc.Do(request)
	if err != nil {
		return 0, nil, err
	}

	defer response.Body.Close()
	b, err := io.ReadAll(response.Body)
	if err != nil {
		return response.StatusCode, nil, err
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return response.StatusCode, b, &StatusCodeError{
			Code: response.StatusCode,
			Body: b,
		}
	}

	return response.StatusCode, b, nil
}

// Get issues a GET request against the given endpoint.
func (c *Client) Get(ctx context.Context, endpoint string, header http.Header) (int, []byte, error) {
	return c.Do(ctx, http.MethodGet, endpoint, header, nil)
}

// Post issues a POST request against the given endpoint.
func (c *Client) Post(ctx context.Context, endpoint string, header http.Header, body io.Reader) (int, []byte, error) {
	return c.Do(ctx, http.MethodPost, endpoint, header, body)
}

// Put issues a PUT request against the given endpoint.
func (c *Client) Put(ctx context.Context, endpoint string, header http.Header, body io.Reader) (int, []byte, error) {
	return c.Do(ctx, http.MethodPut, endpoint, header, body)
}

// Delete issues a DELETE request against the given endpoint.
func (c *Client) Delete(ctx context.Context, endpoint string, header http.Header) (int, []byte, error) {
	return c.Do(ctx, http.MethodDelete, endpoint, header, nil)
}

// requestURL synthesizes the request URL for an endpoint path.
func requestURL(endpoint string) string {
	var o strings.Builder
	o.WriteString("http://")
	o.WriteString(syntheticHost)
	if !strings.HasPrefix(endpoint, "/") {
		o.WriteRune('/')
	}

	o.WriteString(endpoint)
	return o.String()
}
