// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package unixaux

import (
	"context"
	"net"
	"time"
)

// DialFunc is the type of closure accepted by http.Transport.DialContext
// and similar stdlib plumbing.
type DialFunc func(ctx context.Context, network, addr string) (net.Conn, error)

// Dialer produces DialFunc closures bound to a unix domain socket.
// The zero value is a valid dialer with no timeout and the operating
// system's default keep-alive behavior.
type Dialer struct {
	// Timeout is the maximum amount of time a dial will wait for the
	// connect to complete.  This corresponds to net.Dialer.Timeout.
	Timeout time.Duration

	// KeepAlive specifies the keep-alive period for the connection.
	// This corresponds to net.Dialer.KeepAlive.
	KeepAlive time.Duration
}

// DialContext returns a DialFunc that always connects to the given socket
// path.  The network and address arguments supplied by callers are ignored,
// as there is exactly one peer reachable through a unix domain socket.
//
// The returned closure is safe for concurrent use.
func (d Dialer) DialContext(path SocketPath) DialFunc {
	nd := &net.Dialer{
		Timeout:   d.Timeout,
		KeepAlive: d.KeepAlive,
	}

	return func(ctx context.Context, _, _ string) (net.Conn, error) {
		return nd.DialContext(ctx, "unix", string(path))
	}
}
