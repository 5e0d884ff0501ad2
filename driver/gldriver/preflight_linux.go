// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gldriver

import (
	"github.com/BurntSushi/xgb"
	"golang.org/x/xerrors"
)

// preflight checks that the X server named by $DISPLAY accepts connections,
// so a missing display fails with a clear error instead of a GLFW one.
// OSMesa contexts need no display.
func preflight(s contextSpec) error {
	if s.creation == osmesaContext {
		return nil
	}
	xc, err := xgb.NewConn()
	if err != nil {
		return xerrors.Errorf("no X display for %v: %w", s, err)
	}
	xc.Close()
	return nil
}
