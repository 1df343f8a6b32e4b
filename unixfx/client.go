// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package unixfx

import (
	"context"
	"net/http"

	"github.com/spf13/viper"
	"github.com/xmidt-org/unixaux"
	"github.com/xmidt-org/unixaux/unixhttp"
	"go.uber.org/fx"
)

// ClientIn describes the set of dependencies for building a unix socket
// client.
type ClientIn struct {
	fx.In

	// Viper is the required configuration source.  The client's
	// unixhttp.ClientConfig is unmarshaled from it.
	Viper *viper.Viper

	// Lifecycle is the required uber/fx Lifecycle.  The client's idle
	// connections are released when the app stops.
	Lifecycle fx.Lifecycle
}

// ProvideClient emits a *unixhttp.Client and its underlying *http.Client
// as components, built from the unixhttp.ClientConfig unmarshaled at the
// given viper configuration key.
//
// The supplied options are applied to the *http.Client after it is built
// from configuration, and so take precedence over configured values.
func ProvideClient(key string, opts ...unixhttp.ClientOption) fx.Option {
	return fx.Provide(
		func(in ClientIn) (*unixhttp.Client, *http.Client, error) {
			var cc unixhttp.ClientConfig
			if err := in.Viper.UnmarshalKey(key, &cc, unixaux.DefaultDecodeHooks); err != nil {
				return nil, nil, err
			}

			client, err := cc.NewUnixClient(opts...)
			if err != nil {
				return nil, nil, err
			}

			in.Lifecycle.Append(fx.Hook{
				OnStop: func(context.Context) error {
					client.Close()
					return nil
				},
			})

			return client, client.HTTPClient(), nil
		},
	)
}
