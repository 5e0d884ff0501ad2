// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gltest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/gldispatch/gl"
)

func call(t *testing.T, src gl.Source, name string, args ...any) any {
	t.Helper()
	fn, ok := src.Symbols()[name].(*gl.Function)
	if !ok {
		t.Fatalf("%s is not defined", name)
	}
	v, err := fn.Call(args...)
	if err != nil {
		t.Fatalf("%s: %v", name, err)
	}
	return v
}

func TestBackend(t *testing.T) {
	b := New("fake")
	b.QueueErrors(gl.INVALID_ENUM, gl.INVALID_VALUE)
	b.SetResult("glIsEnabled", true)
	b.Recorder.Logger().Info("hello")

	var got []any
	for i := 0; i < 3; i++ {
		got = append(got, call(t, b, "glGetError"))
	}
	got = append(got, call(t, b, "glIsEnabled", gl.Enum(0x0B71)))
	want := []any{gl.INVALID_ENUM, gl.INVALID_VALUE, gl.NO_ERROR, true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("results mismatch (-want, +got):\n%s", diff)
	}
	if n := b.GetErrorCalls(); n != 3 {
		t.Errorf("GetErrorCalls = %d, want 3", n)
	}
	wantEvents := []string{"log: hello", "call: glGetError", "call: glGetError", "call: glGetError", "call: glIsEnabled"}
	if diff := cmp.Diff(wantEvents, b.Recorder.Events); diff != "" {
		t.Errorf("events mismatch (-want, +got):\n%s", diff)
	}
}

func TestExtendedBackend(t *testing.T) {
	x := NewExtended("fakeplus")
	if _, ok := x.ES2().Symbols()[ExtraFunction]; ok {
		t.Errorf("ES2 table holds %s", ExtraFunction)
	}
	call(t, x.ES2(), "glClear", 0)
	call(t, x, ExtraFunction)
	want := []string{"call: glClear", "call: " + ExtraFunction}
	if diff := cmp.Diff(want, x.Recorder.Events); diff != "" {
		t.Errorf("events mismatch (-want, +got):\n%s", diff)
	}
	if len(x.ES2Backend.Calls) != 1 || len(x.Calls) != 1 {
		t.Errorf("calls split %d/%d, want 1/1", len(x.ES2Backend.Calls), len(x.Calls))
	}
}
