// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package unixhttp

import (
	"net/http"
	"time"

	"github.com/xmidt-org/unixaux"
)

// ClientFactory is the creation strategy for an http.Client that dials a
// unix domain socket.  This interface is implemented by any unmarshaled
// struct which holds client configuration fields.
type ClientFactory interface {
	NewClient() (*http.Client, error)
}

// ClientConfig is the built-in ClientFactory implementation for this
// package.  This struct can be unmarshaled via viper, thus allowing an
// http.Client to be bootstrapped from external configuration.  Use
// unixaux.DefaultDecodeHooks so that Path and the duration fields
// unmarshal from their string forms.
type ClientConfig struct {
	// Path is the filesystem path of the socket every request is
	// dialed against.  This field is required.
	Path unixaux.SocketPath

	// Timeout corresponds to http.Client.Timeout.
	Timeout time.Duration

	// Header supplies HTTP headers added to every request sent through
	// this client.
	Header http.Header

	// Transport holds the socket dial and connection pool settings.
	Transport TransportConfig
}

// NewClient is the built-in implementation of ClientFactory in this
// package.  Request headers configured on this instance are applied via a
// round tripper decoration, so they are present regardless of how the
// client is used.
func (cc ClientConfig) NewClient() (*http.Client, error) {
	if err := cc.Path.Validate(); err != nil {
		return nil, err
	}

	return &http.Client{
		Timeout: cc.Timeout,
		Transport: NewRoundTripperChain(
			requestHeaders(cc.Header),
		).Then(cc.Transport.NewTransport(cc.Path)),
	}, nil
}

// NewUnixClient builds the full Client surface from this configuration.
// This is a convenience for the common case of unmarshal-then-construct.
func (cc ClientConfig) NewUnixClient(opts ...ClientOption) (*Client, error) {
	hc, err := cc.NewClient()
	if err != nil {
		return nil, err
	}

	if err := ClientOptions(opts).Apply(hc); err != nil {
		return nil, err
	}

	return &Client{
		path: cc.Path,
		hc:   hc,
	}, nil
}
