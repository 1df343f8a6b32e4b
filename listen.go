// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package unixaux

import (
	"context"
	"io/fs"
	"net"
	"os"
)

// Listen is a closure strategy for creating net.Listener instances bound
// to unix domain sockets.
//
// The built-in implementation of this type is ListenerFactory.Listen.
type Listen func(context.Context) (net.Listener, error)

// ListenerConstructor is a decorator for net.Listener instances.  A
// constructor is applied after the Listen closure creates the listener.
type ListenerConstructor func(net.Listener) net.Listener

// ListenerChain is a sequence of ListenerConstructors.  A ListenerChain is
// immutable, and will apply its constructors in order.  The zero value for
// this type is a valid, empty chain that will not decorate anything.
type ListenerChain struct {
	c []ListenerConstructor
}

// NewListenerChain creates a chain from a sequence of constructors.  The
// constructors are always applied in the order presented here.
func NewListenerChain(c ...ListenerConstructor) ListenerChain {
	return ListenerChain{
		c: append([]ListenerConstructor{}, c...),
	}
}

// Append adds additional ListenerConstructors to this chain, and returns
// the new chain.  This chain is not modified.  If more has zero length,
// this chain is returned.
func (lc ListenerChain) Append(more ...ListenerConstructor) ListenerChain {
	if len(more) > 0 {
		return ListenerChain{
			c: append(
				append([]ListenerConstructor{}, lc.c...),
				more...,
			),
		}
	}

	return lc
}

// Extend is like Append, except that the additional ListenerConstructors
// come from another chain
func (lc ListenerChain) Extend(more ListenerChain) ListenerChain {
	return lc.Append(more.c...)
}

// Then decorates the given listener with all of the constructors applied,
// in the order they were presented to this chain.
func (lc ListenerChain) Then(next net.Listener) net.Listener {
	// apply in reverse order, so that the order of
	// execution matches the order supplied to this chain
	for i := len(lc.c) - 1; i >= 0; i-- {
		next = lc.c[i](next)
	}

	return next
}

// Listen decorates a Listen strategy so that its product, a net.Listener,
// is decorated with the constructors in this chain.
func (lc ListenerChain) Listen(next Listen) Listen {
	if len(lc.c) > 0 {
		return func(ctx context.Context) (net.Listener, error) {
			listener, err := next(ctx)
			if err == nil {
				listener = lc.Then(listener)
			}

			return listener, err
		}
	}

	return next
}

// CapturePath returns a ListenerConstructor that sends the bound socket
// path of the created listener to a channel.  This is useful to capture
// the socket a server actually listens on, usually for testing.
//
// The returned constructor performs no actual decoration.
func CapturePath(ch chan<- string) ListenerConstructor {
	return func(next net.Listener) net.Listener {
		ch <- next.Addr().String()
		return next
	}
}

// ListenerFactory is a configurable factory for net.Listener instances
// bound to unix domain sockets.  This type serves as a convenient built-in
// Listen implementation.
type ListenerFactory struct {
	// Path is the filesystem path to bind.  This field is required.
	Path SocketPath

	// Mode, when nonzero, is the file mode applied to the socket file
	// after binding.  Socket files are created with permissions derived
	// from the process umask, which is frequently wider than desired for
	// a local IPC endpoint.
	Mode fs.FileMode

	// RemoveStale controls whether an existing file at Path is unlinked
	// before binding.  A crashed process leaves its socket file behind,
	// and binding over it fails with EADDRINUSE unless the stale file
	// is removed first.
	RemoveStale bool

	// ListenConfig is the object used to create the net.Listener.
	ListenConfig net.ListenConfig
}

// Listen creates a net.Listener using this factory's configuration.  It is
// assignable to the Listen type.
//
// The underlying listener is always a *net.UnixListener, which unlinks the
// socket file when closed.  Callers should still not assume the concrete
// type, as the listener may be decorated arbitrarily.
func (lf ListenerFactory) Listen(ctx context.Context) (net.Listener, error) {
	if err := lf.Path.Validate(); err != nil {
		return nil, err
	}

	if lf.RemoveStale {
		if err := lf.Path.Remove(); err != nil {
			return nil, err
		}
	}

	l, err := lf.ListenConfig.Listen(ctx, "unix", string(lf.Path))
	if err != nil {
		return nil, err
	}

	if lf.Mode != 0 {
		if err := os.Chmod(string(lf.Path), lf.Mode); err != nil {
			l.Close()
			return nil, err
		}
	}

	return l, nil
}
