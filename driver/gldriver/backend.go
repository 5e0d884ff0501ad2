// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build cgo && (linux || windows)
// +build cgo
// +build linux windows

package gldriver

import (
	"reflect"
	"sync/atomic"

	"golang.org/x/exp/gldispatch/gl"
	mobilegl "golang.org/x/mobile/gl"
	"golang.org/x/xerrors"
)

var (
	contextType  = reflect.TypeOf((*mobilegl.Context)(nil)).Elem()
	context3Type = reflect.TypeOf((*mobilegl.Context3)(nil)).Elem()
)

// backend exposes the methods of a golang.org/x/mobile/gl context as gl
// functions. Only the interface methods are exposed, so the worker
// methods of the underlying context stay hidden.
type backend struct {
	name   string
	ctx    *context
	syms   gl.Table
	closed int32
}

func (b *backend) Name() string            { return b.name }
func (b *backend) Symbols() map[string]any { return b.syms }

// Close destroys the backend's context. Functions called afterwards fail
// with ErrClosed.
func (b *backend) Close() error {
	if atomic.CompareAndSwapInt32(&b.closed, 0, 1) {
		b.ctx.close()
	}
	return nil
}

// extendedBackend is a backend whose table holds the ES 3.0 API. ES2
// returns the ES 2.0 subset of the same context.
type extendedBackend struct {
	*backend
	es2 gl.Table
}

func (b *extendedBackend) ES2() gl.Source { return b.es2 }

func open(name string, s contextSpec) (gl.Backend, error) {
	ctx, err := newContext(s)
	if err != nil {
		return nil, xerrors.Errorf("gldriver: %s: %w", name, err)
	}
	b := &backend{name: name, ctx: ctx}
	es2 := gl.Methods(ctx.glctx, contextType, "gl")
	es2.AddConstants(gl.ES2Constants()...)
	guard(es2, &b.closed)
	if !s.extended {
		b.syms = es2
		return b, nil
	}

	glctx3, ok := ctx.glctx.(mobilegl.Context3)
	if !ok {
		b.Close()
		return nil, xerrors.Errorf("gldriver: %s: context does not implement the ES 3.0 API", name)
	}
	b.syms = gl.Methods(glctx3, context3Type, "gl")
	b.syms.AddConstants(gl.ES2Constants()...)
	b.syms.AddConstants(es3Constants...)
	guard(b.syms, &b.closed)
	return &extendedBackend{backend: b, es2: es2}, nil
}
