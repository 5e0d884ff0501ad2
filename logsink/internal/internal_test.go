// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package internal

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPairs(t *testing.T) {
	var got []any
	Pairs([]any{"a", 1, 2, "b", "dangling"}, func(k string, v any) {
		got = append(got, k, v)
	})
	want := []any{"a", 1, "2", "b", "dangling", "(MISSING)"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}

func TestJoinName(t *testing.T) {
	if got := JoinName(JoinName("", "gl"), "debug"); got != "gl/debug" {
		t.Errorf("JoinName = %q, want gl/debug", got)
	}
}
