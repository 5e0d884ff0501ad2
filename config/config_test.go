// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gl.toml")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv(TargetEnv, "")
	t.Setenv(DebugEnv, "")
	t.Setenv(TestingAppEnv, "")
	for _, test := range []struct {
		name string
		data string
		want *Config
	}{
		{"empty", "", &Config{Target: DefaultTarget}},
		{"target", `target = "es2"`, &Config{Target: "es2"}},
		{"debug", "gl_debug = true", &Config{Target: DefaultTarget, Debug: true}},
		{"both", "target = \"glplus\"\ngl_debug = false\n", &Config{Target: "glplus"}},
	} {
		t.Run(test.name, func(t *testing.T) {
			got, err := Load(writeFile(t, test.data))
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(test.want, got); diff != "" {
				t.Errorf("mismatch (-want, +got):\n%s", diff)
			}
		})
	}
}

func TestLoadUnknownKey(t *testing.T) {
	if _, err := Load(writeFile(t, "gl_debgu = true")); err == nil {
		t.Error("got nil error for misspelled key")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("got nil error for missing file")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(TargetEnv, "dummy")
	t.Setenv(DebugEnv, "1")
	t.Setenv(TestingAppEnv, "osmesa")
	got, err := Load(writeFile(t, "target = \"es2\"\ngl_debug = false\n"))
	if err != nil {
		t.Fatal(err)
	}
	want := &Config{Target: "dummy", Debug: true, TestingApp: "osmesa"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}

func TestFromEnvBadBool(t *testing.T) {
	t.Setenv(DebugEnv, "sometimes")
	if _, err := FromEnv(); err == nil {
		t.Error("got nil error for unparsable GLDISPATCH_GL_DEBUG")
	}
}
