// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package unixhttp

import (
	"net/http"
)

// RoundTripperConstructor is a strategy for decorating an http.RoundTripper.
// Typical use cases are metrics and logging.  The httpaux/roundtrip package
// provides implementations of this signature.
type RoundTripperConstructor func(http.RoundTripper) http.RoundTripper

// RoundTripperChain is a sequence of RoundTripperConstructors.  A chain is
// immutable, and will apply its constructors in order.  The zero value for
// this type is a valid, empty chain that will not decorate anything.
type RoundTripperChain struct {
	c []RoundTripperConstructor
}

// NewRoundTripperChain creates a chain from a sequence of constructors.
// The constructors are always applied in the order presented here.
func NewRoundTripperChain(c ...RoundTripperConstructor) RoundTripperChain {
	return RoundTripperChain{
		c: append([]RoundTripperConstructor{}, c...),
	}
}

// Append adds additional RoundTripperConstructors to this chain, and
// returns the new chain.  This chain is not modified.  If more has zero
// length, this chain is returned.
func (rc RoundTripperChain) Append(more ...RoundTripperConstructor) RoundTripperChain {
	if len(more) > 0 {
		return RoundTripperChain{
			c: append(
				append([]RoundTripperConstructor{}, rc.c...),
				more...,
			),
		}
	}

	return rc
}

// Extend is like Append, except that the additional constructors come from
// another chain
func (rc RoundTripperChain) Extend(more RoundTripperChain) RoundTripperChain {
	return rc.Append(more.c...)
}

// Then decorates the given round tripper with all of the constructors
// applied, in the order they were presented to this chain.  If next is
// nil, the returned RoundTripper decorates http.DefaultTransport.  If this
// chain is empty, this method simply returns next, even if next is nil.
func (rc RoundTripperChain) Then(next http.RoundTripper) http.RoundTripper {
	if len(rc.c) > 0 {
		if next == nil {
			next = http.DefaultTransport
		}

		// apply in reverse order, so that the order of
		// execution matches the order supplied to this chain
		for i := len(rc.c) - 1; i >= 0; i-- {
			next = rc.c[i](next)
		}
	}

	return next
}

// requestHeaders returns a RoundTripperConstructor that adds the given
// headers to every request.  The source headers are deep copied with
// canonicalized keys at construction time, so that the decorator is safe
// to share.  If src is empty, no decoration is performed.
//
// The caller's request is never modified.  Headers are added to a clone,
// which keeps the round tripper contract intact and lets callers reuse a
// prepared request without headers accumulating across sends.
func requestHeaders(src http.Header) RoundTripperConstructor {
	cleaned := make(http.Header, len(src))
	for key, values := range src {
		if len(key) > 0 && len(values) > 0 {
			cleaned[http.CanonicalHeaderKey(key)] = append([]string{}, values...)
		}
	}

	return func(next http.RoundTripper) http.RoundTripper {
		if len(cleaned) == 0 {
			return next
		}

		return roundTripperFunc(func(request *http.Request) (*http.Response, error) {
			clone := request.Clone(request.Context())
			if clone.Header == nil {
				clone.Header = make(http.Header, len(cleaned))
			}

			for key, values := range cleaned {
				clone.Header[key] = append(clone.Header[key], values...)
			}

			return next.RoundTrip(clone)
		})
	}
}

// roundTripperFunc adapts a closure to http.RoundTripper.  The exported
// equivalent for callers is httpaux/roundtrip.Func.
type roundTripperFunc func(*http.Request) (*http.Response, error)

func (rtf roundTripperFunc) RoundTrip(request *http.Request) (*http.Response, error) {
	return rtf(request)
}
