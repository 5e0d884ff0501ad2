// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl

import "golang.org/x/exp/gldispatch/config"

func init() {
	Register("dummy", func(*config.Config) (Backend, error) {
		return newDummy(), nil
	})
}

// dummy is selected when rendering happens elsewhere, for instance in a
// remote viewer. Every function fails with ErrDummy, except glGetError
// which reports no error so periodic checks stay quiet.
type dummy struct {
	syms Table
}

func newDummy() *dummy {
	t := make(Table, len(es2Functions))
	for _, sig := range es2Functions {
		sig := sig
		fn := &Function{Name: sig.Name, Returns: sig.Returns}
		if sig.Name == "glGetError" {
			fn.Call = func(...any) (any, error) { return NO_ERROR, nil }
		} else {
			fn.Call = func(...any) (any, error) { return nil, ErrDummy }
		}
		t.Add(fn)
	}
	return &dummy{syms: t}
}

func (*dummy) Name() string              { return "dummy" }
func (d *dummy) Symbols() map[string]any { return d.syms }
