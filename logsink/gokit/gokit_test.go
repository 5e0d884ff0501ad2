// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lgokit

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
	"github.com/google/go-cmp/cmp"
)

func Test(t *testing.T) {
	var buf bytes.Buffer
	l := level.NewFilter(log.NewLogfmtLogger(&buf), level.AllowInfo())
	lg := New(l).WithName("gl").WithValues("backend", "fake")
	lg.Info("using", "debug", true)
	lg.V(1).Info("glClear(16384)")
	lg.Error(errors.New("boom"), "failed")

	got := strings.Split(strings.TrimSpace(buf.String()), "\n")
	want := []string{
		"backend=fake level=info logger=gl msg=using debug=true",
		"backend=fake level=error logger=gl msg=failed err=boom",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}
