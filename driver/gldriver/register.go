// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gldriver

import (
	"golang.org/x/exp/gldispatch/config"
	"golang.org/x/exp/gldispatch/gl"
	"golang.org/x/xerrors"
)

// Backends lists the backend names registered by this package.
var Backends = []string{"gl2", "es2", "glplus"}

// ErrUnsupported is returned when native contexts cannot be created in
// this build.
var ErrUnsupported = xerrors.New("gldriver: native GL needs cgo on linux or windows")

// ErrClosed is returned by the functions of a backend that has been closed.
var ErrClosed = xerrors.New("gldriver: backend is closed")

func init() {
	for _, name := range Backends {
		name := name
		gl.Register(name, func(cfg *config.Config) (gl.Backend, error) {
			return Open(name, cfg)
		})
	}
}

// Open creates a context for the named backend. The caller owns the
// returned backend and must close it.
func Open(name string, cfg *config.Config) (gl.Backend, error) {
	cs, err := specFor(name, cfg)
	if err != nil {
		return nil, err
	}
	if err := preflight(cs); err != nil {
		return nil, xerrors.Errorf("gldriver: %s: %w", name, err)
	}
	return open(name, cs)
}
