// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/gldispatch/config"
	"golang.org/x/exp/gldispatch/gl"
	"golang.org/x/exp/gldispatch/gl/gltest"
	"golang.org/x/image/bmp"
)

func newFacade(b *gltest.Backend) *gl.Facade {
	r := gl.NewRegistry()
	r.Register("fake", b.Factory())
	return gl.New(gl.WithRegistry(r), gl.WithConfig(config.Default()))
}

func TestRun(t *testing.T) {
	b := gltest.New("fake")
	b.SetResult("glGetString", "Fake GL")
	var out bytes.Buffer
	if err := run(&out, newFacade(b), options{target: "fake"}); err != nil {
		t.Fatal(err)
	}
	want := `backend: fake
debug: false
GL_VENDOR: Fake GL
GL_RENDERER: Fake GL
GL_VERSION: Fake GL
GL_SHADING_LANGUAGE_VERSION: Fake GL
`
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("output mismatch (-want, +got):\n%s", diff)
	}
	if !b.Closed {
		t.Error("backend not closed after run")
	}
}

func TestRunList(t *testing.T) {
	var out bytes.Buffer
	if err := run(&out, newFacade(gltest.New("fake")), options{target: "fake", list: true}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(out.String(), "\n")
	has := make(map[string]bool)
	for _, l := range lines {
		has[l] = true
	}
	for _, name := range []string{"glClear", "glGetError", "GL_COLOR_BUFFER_BIT"} {
		if !has[name] {
			t.Errorf("listing lacks %s", name)
		}
	}
}

func TestRunReportsGLErrors(t *testing.T) {
	b := gltest.New("fake")
	b.QueueErrors(gl.INVALID_ENUM)
	err := run(&bytes.Buffer{}, newFacade(b), options{target: "fake"})
	if err == nil || !strings.Contains(err.Error(), "GL_INVALID_ENUM") {
		t.Errorf("run = %v, want a GL_INVALID_ENUM error", err)
	}
}

func TestSnapshot(t *testing.T) {
	b := gltest.New("fake")
	path := filepath.Join(t.TempDir(), "snap.bmp")
	var out bytes.Buffer
	err := run(&out, newFacade(b), options{target: "fake debug", snapshot: path, width: 8, height: 4})
	if err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := bmp.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 8 || cfg.Height != 4 {
		t.Errorf("snapshot is %dx%d, want 8x4", cfg.Width, cfg.Height)
	}

	var read *gltest.Call
	for i := range b.Calls {
		if b.Calls[i].Name == "glReadPixels" {
			read = &b.Calls[i]
		}
	}
	if read == nil {
		t.Fatal("glReadPixels was not called")
	}
	if got := len(read.Args[0].([]byte)); got != 4*8*4 {
		t.Errorf("glReadPixels buffer has %d bytes, want %d", got, 4*8*4)
	}
}

func TestSnapshotBadSize(t *testing.T) {
	err := run(&bytes.Buffer{}, newFacade(gltest.New("fake")), options{target: "fake", snapshot: "x.bmp"})
	if err == nil {
		t.Error("run accepted a zero snapshot size")
	}
}

func TestNewLogger(t *testing.T) {
	for _, kind := range []string{"std", "zap", "logrus", "zerolog", "gokit"} {
		t.Run(kind, func(t *testing.T) {
			var buf bytes.Buffer
			l, err := newLogger(kind, 0, &buf)
			if err != nil {
				t.Fatal(err)
			}
			l.Info("using GL backend", "backend", "fake")
			l.V(1).Info("glClear(16384)")
			got := buf.String()
			if !strings.Contains(got, "using GL backend") {
				t.Errorf("output %q lacks the info message", got)
			}
			if strings.Contains(got, "glClear") {
				t.Errorf("output %q holds a V(1) message at verbosity 0", got)
			}
		})
	}
	if _, err := newLogger("syslog", 0, &bytes.Buffer{}); err == nil {
		t.Error("newLogger accepted an unknown kind")
	}
}
