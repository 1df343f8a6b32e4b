// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package unixaux provides primitives for speaking HTTP over unix domain
sockets: a dialer and listener factory addressed by filesystem path, plus
the configuration decode hooks those types need.

The subpackages build on these primitives.  Package unixhttp constructs
http.Client and http.Server instances bound to a socket, unixfx integrates
them into an uber/fx application, and unixtest supplies test tooling.
*/
package unixaux
