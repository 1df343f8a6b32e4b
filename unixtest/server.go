// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package unixtest

import (
	"context"
	"net/http"
	"testing"

	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"github.com/xmidt-org/unixaux"
)

// Server is an in-process HTTP server bound to a unix domain socket,
// intended for tests that exercise socket clients against real traffic.
//
// Register routes on Router before calling Start.  The Router is not safe
// for mutation once the server is accepting connections.
type Server struct {
	// Router receives all requests dispatched to this server.
	Router *mux.Router

	path   string
	server *http.Server
}

// NewServer creates an unstarted server.  If path is empty, a fresh
// path from Path is used.  Any middleware is applied around the Router
// via an alice chain, outermost first.
func NewServer(t *testing.T, path string, middleware ...alice.Constructor) *Server {
	if len(path) == 0 {
		path = Path(t)
	}

	router := mux.NewRouter()
	s := &Server{
		Router: router,
		path:   path,
		server: &http.Server{
			Handler: alice.New(middleware...).Then(router),
		},
	}

	t.Cleanup(func() {
		s.Stop()
	})

	return s
}

// Path returns the socket path this server is (or will be) bound to.
func (s *Server) Path() string {
	return s.path
}

// Start binds the socket and begins accepting connections.  Any existing
// socket file is removed first, so that a test can simulate a server
// restart on the same path.
func (s *Server) Start(t *testing.T) {
	listener, err := unixaux.ListenerFactory{
		Path:        unixaux.SocketPath(s.path),
		RemoveStale: true,
	}.Listen(context.Background())

	if err != nil {
		t.Fatalf("unable to listen on %s: %s", s.path, err)
	}

	go s.server.Serve(listener)
}

// Stop closes the server immediately, dropping any active connections.
// Stopping an unstarted or already stopped server is a no-op.
func (s *Server) Stop() {
	s.server.Close()
}

// StartServer creates and starts a server on a fresh socket path, giving
// the configure closure a chance to register routes first.
func StartServer(t *testing.T, configure func(*mux.Router), middleware ...alice.Constructor) *Server {
	s := NewServer(t, "", middleware...)
	if configure != nil {
		configure(s.Router)
	}

	s.Start(t)
	return s
}
