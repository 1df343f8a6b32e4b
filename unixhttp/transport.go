// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package unixhttp

import (
	"net/http"
	"time"

	"github.com/xmidt-org/unixaux"
)

// TransportConfig holds the unmarshalable fields for building an
// http.Transport whose connections dial a unix domain socket.  Fields
// correspond directly to their http.Transport counterparts unless noted
// otherwise.
//
// There is no TLS or proxy configuration:  traffic never leaves the host,
// and the transport always speaks HTTP/1 over the socket.
type TransportConfig struct {
	// DialTimeout is the maximum amount of time a dial will wait for the
	// socket connect to complete.  This corresponds to net.Dialer.Timeout.
	DialTimeout time.Duration

	// KeepAlive corresponds to net.Dialer.KeepAlive.
	KeepAlive time.Duration

	DisableKeepAlives      bool
	DisableCompression     bool
	MaxIdleConns           int
	MaxIdleConnsPerHost    int
	MaxConnsPerHost        int
	IdleConnTimeout        time.Duration
	ResponseHeaderTimeout  time.Duration
	ExpectContinueTimeout  time.Duration
	MaxResponseHeaderBytes int64
	WriteBufferSize        int
	ReadBufferSize         int
}

// NewTransport creates an http.Transport with every connection dialed
// against the given socket path.  The request URL's host is ignored by
// the dialer, as a unix domain socket has exactly one peer.
func (tc TransportConfig) NewTransport(path unixaux.SocketPath) *http.Transport {
	dialer := unixaux.Dialer{
		Timeout:   tc.DialTimeout,
		KeepAlive: tc.KeepAlive,
	}

	return &http.Transport{
		DialContext:            dialer.DialContext(path),
		DisableKeepAlives:      tc.DisableKeepAlives,
		DisableCompression:     tc.DisableCompression,
		MaxIdleConns:           tc.MaxIdleConns,
		MaxIdleConnsPerHost:    tc.MaxIdleConnsPerHost,
		MaxConnsPerHost:        tc.MaxConnsPerHost,
		IdleConnTimeout:        tc.IdleConnTimeout,
		ResponseHeaderTimeout:  tc.ResponseHeaderTimeout,
		ExpectContinueTimeout:  tc.ExpectContinueTimeout,
		MaxResponseHeaderBytes: tc.MaxResponseHeaderBytes,
		WriteBufferSize:        tc.WriteBufferSize,
		ReadBufferSize:         tc.ReadBufferSize,
	}
}
