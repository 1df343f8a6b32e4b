// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package unixhttp

import (
	"context"
	"io/fs"
	"net"
	"net/http"
	"time"

	"github.com/xmidt-org/httpaux"
	"github.com/xmidt-org/unixaux"
	"go.uber.org/fx"
)

// ServerFactory is the creation strategy for an http.Server bound to a
// unix domain socket.  This interface is implemented by any unmarshaled
// struct which holds server configuration fields.
//
// An implementation may optionally supply a Listen method assignable to
// unixaux.Listen to control how the server's listener is created.
type ServerFactory interface {
	// NewServer is responsible for creating an http.Server using whatever
	// information was unmarshaled into this instance.  The supplied
	// http.Handler is used as http.Server.Handler, though implementations
	// are free to decorate it arbitrarily.
	NewServer(http.Handler) (*http.Server, error)
}

// ServerConfig is the built-in ServerFactory implementation for this
// package.  This struct can be unmarshaled via viper, thus allowing an
// http.Server to be bootstrapped from external configuration.
type ServerConfig struct {
	// Path is the filesystem path of the socket to bind.  This field
	// is required.
	Path unixaux.SocketPath

	// Mode, when nonzero, is the file mode applied to the socket file
	// after binding.  Use unixaux.DefaultDecodeHooks to unmarshal this
	// field from an octal string such as "0660".
	Mode fs.FileMode

	// RemoveStale controls whether an existing file at Path is unlinked
	// before binding.
	RemoveStale bool

	// ReadTimeout corresponds to http.Server.ReadTimeout
	ReadTimeout time.Duration

	// ReadHeaderTimeout corresponds to http.Server.ReadHeaderTimeout
	ReadHeaderTimeout time.Duration

	// WriteTimeout corresponds to http.Server.WriteTimeout
	WriteTimeout time.Duration

	// IdleTimeout corresponds to http.Server.IdleTimeout
	IdleTimeout time.Duration

	// MaxHeaderBytes corresponds to http.Server.MaxHeaderBytes
	MaxHeaderBytes int

	// KeepAlive corresponds to net.ListenConfig.KeepAlive.  This value is
	// only used for listeners created via Listen.
	KeepAlive time.Duration

	// Header supplies HTTP headers to emit on every response from this
	// server
	Header http.Header
}

// NewServer is the built-in implementation of ServerFactory in this
// package.  The server's Addr field is set to the socket path, which is
// purely informational:  the listener produced by Listen determines what
// the server is actually bound to.
func (sc ServerConfig) NewServer(h http.Handler) (*http.Server, error) {
	if err := sc.Path.Validate(); err != nil {
		return nil, err
	}

	return &http.Server{
		Addr:              string(sc.Path),
		Handler:           responseHeaders(sc.Header, h),
		ReadTimeout:       sc.ReadTimeout,
		ReadHeaderTimeout: sc.ReadHeaderTimeout,
		WriteTimeout:      sc.WriteTimeout,
		IdleTimeout:       sc.IdleTimeout,
		MaxHeaderBytes:    sc.MaxHeaderBytes,
	}, nil
}

// responseHeaders decorates a handler so that the given headers are set on
// every response before the wrapped handler runs.  If src is empty, next is
// returned undecorated.
func responseHeaders(src http.Header, next http.Handler) http.Handler {
	if len(src) == 0 {
		return next
	}

	header := httpaux.NewHeader(src)
	return http.HandlerFunc(func(response http.ResponseWriter, request *http.Request) {
		header.SetTo(response.Header())
		next.ServeHTTP(response, request)
	})
}

// Listen is the unixaux.Listen implementation driven by ServerConfig.
func (sc ServerConfig) Listen(ctx context.Context) (net.Listener, error) {
	return unixaux.ListenerFactory{
		Path:        sc.Path,
		Mode:        sc.Mode,
		RemoveStale: sc.RemoveStale,
		ListenConfig: net.ListenConfig{
			KeepAlive: sc.KeepAlive,
		},
	}.Listen(ctx)
}

// ServerExit is a callback function run when the server exits its accept
// loop.  A ServerExit function must never panic, or server cleanup will be
// interrupted.
type ServerExit func()

// ShutdownOnExit returns a ServerExit strategy that calls the supplied
// uber/fx Shutdowner when a server exits.  This ensures that if a given
// server exits its accept loop, the entire fx.App is stopped.
func ShutdownOnExit(shutdowner fx.Shutdowner, opts ...fx.ShutdownOption) ServerExit {
	return func() {
		shutdowner.Shutdown(opts...)
	}
}

// Serve executes the given server's accept loop using the supplied
// net.Listener.  This function can be run as a goroutine.
//
// Any onExit functions will be called when the server's accept loop exits.
func Serve(s *http.Server, l net.Listener, onExit ...ServerExit) error {
	defer func() {
		for _, f := range onExit {
			f()
		}
	}()

	return s.Serve(l)
}

// ServerOnStart returns an fx.Hook.OnStart closure that starts the given
// server's accept loop on a listener created by the Listen strategy.
func ServerOnStart(s *http.Server, l unixaux.Listen, onExit ...ServerExit) func(context.Context) error {
	return func(ctx context.Context) error {
		listener, err := l(ctx)
		if err != nil {
			return err
		}

		go Serve(s, listener, onExit...)
		return nil
	}
}
