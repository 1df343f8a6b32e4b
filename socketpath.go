// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package unixaux

import (
	"os"
	"strings"
)

// maxSocketPathLen is the portable limit on the length of a unix domain
// socket path.  Linux allows 108 bytes for sun_path, darwin and the BSDs
// allow 104; the smaller value is enforced so that configurations remain
// portable.  The terminating NUL consumes one byte.
const maxSocketPathLen = 103

// InvalidSocketPathError indicates that a socket path cannot be used to
// dial or listen on a unix domain socket.
type InvalidSocketPathError struct {
	// Path is the offending socket path.
	Path string

	// Reason is a short description of why the path was rejected.
	Reason string
}

// Error describes the path and the reason it was rejected.
func (ispe *InvalidSocketPathError) Error() string {
	var o strings.Builder
	o.WriteString("invalid socket path ")
	o.WriteRune('"')
	o.WriteString(ispe.Path)
	o.WriteRune('"')
	o.WriteString(": ")
	o.WriteString(ispe.Reason)

	return o.String()
}

// SocketPath is the filesystem path of a unix domain socket.  The zero
// value is invalid, as there is no sensible default location for a socket.
//
// SocketPath implements encoding.TextUnmarshaler so that it participates
// in configuration unmarshaling via DefaultDecodeHooks.
type SocketPath string

// Validate verifies that this path can address a unix domain socket.
// An empty path or a path longer than the portable sun_path limit
// results in an *InvalidSocketPathError.
func (sp SocketPath) Validate() error {
	switch {
	case len(sp) == 0:
		return &InvalidSocketPathError{
			Path:   string(sp),
			Reason: "the path cannot be empty",
		}

	case len(sp) > maxSocketPathLen:
		return &InvalidSocketPathError{
			Path:   string(sp),
			Reason: "the path exceeds the maximum sun_path length",
		}

	default:
		return nil
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.  The unmarshaled
// path is validated before assignment.
func (sp *SocketPath) UnmarshalText(text []byte) error {
	candidate := SocketPath(text)
	if err := candidate.Validate(); err != nil {
		return err
	}

	*sp = candidate
	return nil
}

// Remove unlinks the socket file, if it exists.  A missing file is not
// an error.  This is useful for clearing a stale socket left behind by
// an unclean shutdown prior to listening.
func (sp SocketPath) Remove() error {
	err := os.Remove(string(sp))
	if err != nil && os.IsNotExist(err) {
		err = nil
	}

	return err
}
