// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package llogrus

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func Test(t *testing.T) {
	l, hook := test.NewNullLogger()
	l.SetLevel(logrus.DebugLevel)
	boom := errors.New("boom")
	log := New(l).WithName("gl").WithValues("backend", "fake")
	log.Info("using GL backend", "debug", true)
	log.V(1).Info("glClear(16384)")
	log.V(2).Info("too verbose")
	log.WithName("check").Error(boom, "check failed")

	type entry struct {
		Level   logrus.Level
		Message string
		Data    logrus.Fields
	}
	var got []entry
	for _, e := range hook.AllEntries() {
		got = append(got, entry{e.Level, e.Message, e.Data})
	}
	want := []entry{
		{logrus.InfoLevel, "using GL backend", logrus.Fields{"logger": "gl", "backend": "fake", "debug": true}},
		{logrus.DebugLevel, "glClear(16384)", logrus.Fields{"logger": "gl", "backend": "fake"}},
		{logrus.ErrorLevel, "check failed", logrus.Fields{"logger": "gl/check", "backend": "fake", "error": boom}},
	}
	if diff := cmp.Diff(want, got, cmp.Comparer(func(a, b error) bool { return a == b })); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}
