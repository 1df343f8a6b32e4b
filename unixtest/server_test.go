// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package unixtest_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/suite"
	"github.com/xmidt-org/unixaux/unixhttp"
	"github.com/xmidt-org/unixaux/unixtest"
)

type ServerSuite struct {
	suite.Suite
}

func (suite *ServerSuite) TestStartServer() {
	server := unixtest.StartServer(suite.T(), func(router *mux.Router) {
		router.HandleFunc("/status", func(response http.ResponseWriter, _ *http.Request) {
			response.WriteHeader(299)
		})
	})

	client, err := unixhttp.New(server.Path())
	suite.Require().NoError(err)

	status, _, err := client.Get(context.Background(), "/status", nil)
	suite.Require().NoError(err)
	suite.Equal(299, status)
}

func (suite *ServerSuite) TestMiddleware() {
	tag := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
			response.Header().Set("X-Middleware", "true")
			next.ServeHTTP(response, request)
		})
	}

	server := unixtest.StartServer(
		suite.T(),
		func(router *mux.Router) {
			router.HandleFunc("/status", func(response http.ResponseWriter, _ *http.Request) {
				response.WriteHeader(299)
			})
		},
		tag,
	)

	client, err := unixhttp.New(server.Path())
	suite.Require().NoError(err)

	response, err := client.HTTPClient().Get("http://unix/status")
	suite.Require().NoError(err)
	defer response.Body.Close()

	suite.Equal(299, response.StatusCode)
	suite.Equal("true", response.Header.Get("X-Middleware"))
}

func (suite *ServerSuite) TestRestart() {
	server := unixtest.StartServer(suite.T(), func(router *mux.Router) {
		router.HandleFunc("/status", func(response http.ResponseWriter, _ *http.Request) {
			response.WriteHeader(299)
		})
	})

	client, err := unixhttp.New(server.Path())
	suite.Require().NoError(err)

	status, _, err := client.Get(context.Background(), "/status", nil)
	suite.Require().NoError(err)
	suite.Equal(299, status)

	server.Stop()

	_, _, err = client.Get(context.Background(), "/status", nil)
	suite.Error(err)

	restarted := unixtest.NewServer(suite.T(), server.Path())
	restarted.Router.HandleFunc("/status", func(response http.ResponseWriter, _ *http.Request) {
		response.WriteHeader(299)
	})

	restarted.Start(suite.T())
	client.Reconnect()

	status, _, err = client.Get(context.Background(), "/status", nil)
	suite.Require().NoError(err)
	suite.Equal(299, status)
}

func TestServer(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}
