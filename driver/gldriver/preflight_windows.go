// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gldriver

import (
	"golang.org/x/sys/windows"
	"golang.org/x/xerrors"
)

// angleDLLs are the ANGLE libraries that provide OpenGL ES on Windows.
var angleDLLs = []string{"libEGL.dll", "libGLESv2.dll"}

// preflight checks that the ANGLE libraries can be loaded. Every context on
// Windows is created through them.
func preflight(s contextSpec) error {
	for _, name := range angleDLLs {
		if err := windows.NewLazySystemDLL(name).Load(); err != nil {
			// Applications usually ship ANGLE next to the executable.
			if err := windows.NewLazyDLL(name).Load(); err != nil {
				return xerrors.Errorf("%v needs %s: %w", s, name, err)
			}
		}
	}
	return nil
}
