// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lzerolog

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
)

func Test(t *testing.T) {
	var buf bytes.Buffer
	log := New(zerolog.New(&buf).Level(zerolog.DebugLevel)).WithName("gl").WithValues("backend", "fake")
	log.Info("using GL backend", "debug", true)
	log.V(1).Info("glClear(16384)")
	log.V(2).Info("too verbose")
	log.Error(errors.New("boom"), "check failed")

	var got []map[string]any
	dec := json.NewDecoder(&buf)
	for dec.More() {
		var m map[string]any
		if err := dec.Decode(&m); err != nil {
			t.Fatal(err)
		}
		got = append(got, m)
	}
	want := []map[string]any{
		{"level": "info", "logger": "gl", "backend": "fake", "debug": true, "message": "using GL backend"},
		{"level": "debug", "logger": "gl", "backend": "fake", "message": "glClear(16384)"},
		{"level": "error", "logger": "gl", "backend": "fake", "error": "boom", "message": "check failed"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}
