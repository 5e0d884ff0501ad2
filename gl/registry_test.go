// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/gldispatch/config"
	"golang.org/x/xerrors"
)

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	opened := 0
	r.Register("b", func(*config.Config) (Backend, error) { opened++; return newDummy(), nil })
	r.Register("a", func(*config.Config) (Backend, error) { return nil, nil })
	failure := xerrors.New("no display")
	r.Register("c", func(*config.Config) (Backend, error) { return nil, failure })

	if diff := cmp.Diff([]string{"a", "b", "c"}, r.Available()); diff != "" {
		t.Errorf("Available mismatch (-want, +got):\n%s", diff)
	}
	if !r.IsRegistered("b") || r.IsRegistered("d") {
		t.Error("IsRegistered disagrees with Register")
	}

	if _, err := r.Open("b", config.Default()); err != nil {
		t.Errorf("Open(b): %v", err)
	}
	if _, err := r.Open("b", config.Default()); err != nil {
		t.Errorf("Open(b): %v", err)
	}
	if opened != 2 {
		t.Errorf("factory called %d times, want 2", opened)
	}
	if _, err := r.Open("a", config.Default()); err == nil {
		t.Error("Open(a) accepted a nil backend")
	}
	if _, err := r.Open("c", config.Default()); !xerrors.Is(err, failure) {
		t.Errorf("Open(c) = %v, want the factory error", err)
	}
	if _, err := r.Open("d", config.Default()); !xerrors.Is(err, ErrUnknownBackend) {
		t.Errorf("Open(d) = %v, want ErrUnknownBackend", err)
	}

	r.Unregister("b")
	if r.IsRegistered("b") {
		t.Error("b still registered after Unregister")
	}
}

func TestRegisterNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register(nil) did not panic")
		}
	}()
	NewRegistry().Register("x", nil)
}

func TestDefaultRegistryHasDummy(t *testing.T) {
	if !DefaultRegistry.IsRegistered("dummy") {
		t.Errorf("dummy backend not registered; have %v", Available())
	}
}
