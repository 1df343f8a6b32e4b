// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package unixfx integrates unixhttp clients and servers into an uber/fx
application.  Configuration is unmarshaled from a *viper.Viper component
supplied by the enclosing app, and lifecycles are bound to fx.Lifecycle.
*/
package unixfx
