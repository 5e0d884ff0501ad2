// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gldriver

import (
	"testing"

	"golang.org/x/exp/gldispatch/config"
	"golang.org/x/exp/gldispatch/gl"
)

func TestSpecFor(t *testing.T) {
	defer func(old bool) { angleOnly = old }(angleOnly)

	tests := []struct {
		name       string
		testingApp string
		angle      bool
		want       string
	}{
		{"gl2", "", false, "OpenGL 2.1 via native"},
		{"es2", "", false, "OpenGL ES 2.0 via EGL"},
		{"glplus", "", false, "OpenGL ES 3.0 via EGL"},
		{"gl2", "osmesa", false, "OpenGL 2.1 via OSMesa"},
		{"es2", "osmesa", false, "OpenGL ES 2.0 via OSMesa"},
		{"gl2", "something else", false, "OpenGL 2.1 via native"},
		{"gl2", "", true, "OpenGL ES 2.0 via EGL"},
		{"gl2", "osmesa", true, "OpenGL ES 2.0 via EGL"},
		{"es2", "osmesa", true, "OpenGL ES 2.0 via EGL"},
		{"glplus", "", true, "OpenGL ES 3.0 via EGL"},
	}
	for _, test := range tests {
		angleOnly = test.angle
		cfg := config.Default()
		cfg.TestingApp = test.testingApp
		s, err := specFor(test.name, cfg)
		if err != nil {
			t.Fatalf("specFor(%q): %v", test.name, err)
		}
		if got := s.String(); got != test.want {
			t.Errorf("specFor(%q) with TestingApp %q, angleOnly %t = %s, want %s",
				test.name, test.testingApp, test.angle, got, test.want)
		}
	}
	angleOnly = false
	if _, err := specFor("gl3", config.Default()); err == nil {
		t.Error("specFor(gl3) succeeded")
	}
	if s, _ := specFor("glplus", nil); !s.extended {
		t.Error("glplus is not extended")
	}
}

func TestRegistered(t *testing.T) {
	for _, name := range Backends {
		if !gl.DefaultRegistry.IsRegistered(name) {
			t.Errorf("%s is not registered", name)
		}
	}
}

func TestES3ConstantsDisjoint(t *testing.T) {
	es2 := make(map[string]bool)
	for _, c := range gl.ES2Constants() {
		es2[c.Name] = true
	}
	seen := make(map[string]bool)
	for _, c := range es3Constants {
		if es2[c.Name] {
			t.Errorf("%s is already an ES 2.0 constant", c.Name)
		}
		if seen[c.Name] {
			t.Errorf("%s listed twice", c.Name)
		}
		seen[c.Name] = true
	}
}
