// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package unixfx

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/spf13/viper"
	"github.com/xmidt-org/unixaux"
	"github.com/xmidt-org/unixaux/unixhttp"
	"go.uber.org/fx"
)

// ServerIn describes the set of dependencies for building a unix socket
// server.
type ServerIn struct {
	fx.In

	// Viper is the required configuration source.  The server's
	// unixhttp.ServerConfig is unmarshaled from it.
	Viper *viper.Viper

	// Lifecycle is the required uber/fx Lifecycle to which the server
	// will be bound.  The server starts when the app starts and
	// gracefully shuts down when the app is stopped, which also unlinks
	// the socket file.
	Lifecycle fx.Lifecycle

	// Shutdowner is used to guarantee that any server which aborts its
	// accept loop will stop the entire app.
	Shutdowner fx.Shutdowner
}

// ProvideServer emits an *http.Server bound to a unix domain socket,
// together with the *mux.Router serving as its handler, built from the
// unixhttp.ServerConfig unmarshaled at the given viper configuration key.
//
// The server is always constructed, even if no other component depends on
// it, so that its accept loop is bound to the app lifecycle.  Routes may
// be registered on the router any time before the app is started.
func ProvideServer(key string) fx.Option {
	return fx.Options(
		fx.Provide(
			func(in ServerIn) (*http.Server, *mux.Router, error) {
				var sc unixhttp.ServerConfig
				if err := in.Viper.UnmarshalKey(key, &sc, unixaux.DefaultDecodeHooks); err != nil {
					return nil, nil, err
				}

				router := mux.NewRouter()
				server, err := sc.NewServer(router)
				if err != nil {
					return nil, nil, err
				}

				in.Lifecycle.Append(fx.Hook{
					OnStart: unixhttp.ServerOnStart(
						server,
						sc.Listen,
						unixhttp.ShutdownOnExit(in.Shutdowner),
					),
					OnStop: func(ctx context.Context) error {
						return server.Shutdown(ctx)
					},
				})

				return server, router, nil
			},
		),
		fx.Invoke(
			func(*http.Server) {},
		),
	)
}
