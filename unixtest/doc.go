// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

/*
Package unixtest provides test tooling for code that speaks HTTP over unix
domain sockets:  short-lived socket paths, an in-process server harness,
and an embeddable suite type that manages a viper environment.
*/
package unixtest
