// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gldriver

import (
	"sync/atomic"

	"golang.org/x/exp/gldispatch/gl"
	"golang.org/x/xerrors"
)

// guard replaces the functions of t with ones that fail with ErrClosed
// once *closed is non-zero. The worker thread of a closed context no
// longer runs, so the unwrapped calls would never return.
func guard(t gl.Table, closed *int32) {
	for name, v := range t {
		fn, ok := v.(*gl.Function)
		if !ok {
			continue
		}
		call := fn.Call
		t[name] = &gl.Function{
			Name:    fn.Name,
			Returns: fn.Returns,
			Call: func(args ...any) (any, error) {
				if atomic.LoadInt32(closed) != 0 {
					return nil, xerrors.Errorf("%s: %w", fn.Name, ErrClosed)
				}
				return call(args...)
			},
		}
	}
}
