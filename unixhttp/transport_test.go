// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package unixhttp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type TransportConfigSuite struct {
	suite.Suite
}

func (suite *TransportConfigSuite) TestBasic() {
	tc := TransportConfig{
		DialTimeout:            3 * time.Second,
		KeepAlive:              30 * time.Second,
		DisableKeepAlives:      true,
		DisableCompression:     true,
		MaxIdleConns:           17,
		MaxIdleConnsPerHost:    5,
		MaxConnsPerHost:        92,
		IdleConnTimeout:        2 * time.Minute,
		ResponseHeaderTimeout:  13 * time.Millisecond,
		ExpectContinueTimeout:  29 * time.Second,
		MaxResponseHeaderBytes: 347234,
		WriteBufferSize:        234867,
		ReadBufferSize:         93247,
	}

	transport := tc.NewTransport("/run/test.sock")
	suite.Require().NotNil(transport)

	suite.NotNil(transport.DialContext)
	suite.True(transport.DisableKeepAlives)
	suite.True(transport.DisableCompression)
	suite.Equal(17, transport.MaxIdleConns)
	suite.Equal(5, transport.MaxIdleConnsPerHost)
	suite.Equal(92, transport.MaxConnsPerHost)
	suite.Equal(2*time.Minute, transport.IdleConnTimeout)
	suite.Equal(13*time.Millisecond, transport.ResponseHeaderTimeout)
	suite.Equal(29*time.Second, transport.ExpectContinueTimeout)
	suite.Equal(int64(347234), transport.MaxResponseHeaderBytes)
	suite.Equal(234867, transport.WriteBufferSize)
	suite.Equal(93247, transport.ReadBufferSize)
	suite.False(transport.ForceAttemptHTTP2)
}

func (suite *TransportConfigSuite) TestDefaults() {
	transport := TransportConfig{}.NewTransport("/run/test.sock")
	suite.Require().NotNil(transport)
	suite.NotNil(transport.DialContext)
	suite.Nil(transport.TLSClientConfig)
}

func TestTransportConfig(t *testing.T) {
	suite.Run(t, new(TransportConfigSuite))
}
