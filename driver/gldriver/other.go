// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !cgo || !(linux || windows)
// +build !cgo !linux,!windows

package gldriver

import (
	"golang.org/x/exp/gldispatch/gl"
	"golang.org/x/xerrors"
)

func open(name string, s contextSpec) (gl.Backend, error) {
	return nil, xerrors.Errorf("gldriver: %s: %v: %w", name, s, ErrUnsupported)
}
