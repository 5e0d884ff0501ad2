// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzap

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func Test(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := New(zap.New(core)).WithName("gl").WithValues("backend", "fake")
	log.Info("using GL backend", "debug", true)
	log.V(1).Info("glClear(16384)")
	log.V(2).Info("too verbose")
	log.Error(errors.New("boom"), "check failed")

	entries := logs.AllUntimed()
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3: %v", len(entries), entries)
	}
	type entry struct {
		Level   zapcore.Level
		Name    string
		Message string
		Context map[string]any
	}
	var got []entry
	for _, e := range entries {
		got = append(got, entry{e.Level, e.LoggerName, e.Message, e.ContextMap()})
	}
	want := []entry{
		{zapcore.InfoLevel, "gl", "using GL backend", map[string]any{"backend": "fake", "debug": true}},
		{zapcore.DebugLevel, "gl", "glClear(16384)", map[string]any{"backend": "fake"}},
		{zapcore.ErrorLevel, "gl", "check failed", map[string]any{"backend": "fake", "error": "boom"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}
