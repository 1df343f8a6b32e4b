// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package unixhttp builds http clients and servers that communicate over
unix domain sockets instead of TCP.

The central type for callers is Client, which exposes a request/response
surface addressed by endpoint path.  The configuration types ClientConfig
and ServerConfig can be unmarshaled via viper, allowing either side to be
bootstrapped from external configuration.
*/
package unixhttp
