// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package unixtest

import (
	"os"
	"path/filepath"
	"testing"
)

// Path returns a socket path suitable for a single test, removed along
// with its parent directory during test cleanup.
//
// The path is intentionally short.  Unix socket paths are limited to
// roughly one hundred bytes, and testing.T.TempDir can produce paths that
// blow past that limit on some platforms.
func Path(t *testing.T) string {
	dir, err := os.MkdirTemp("", "unixtest-*")
	if err != nil {
		t.Fatalf("unable to create socket directory: %s", err)
	}

	t.Cleanup(func() {
		os.RemoveAll(dir)
	})

	return filepath.Join(dir, "s.sock")
}
