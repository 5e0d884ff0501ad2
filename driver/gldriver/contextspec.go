// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gldriver

import (
	"fmt"
	"runtime"

	"golang.org/x/exp/gldispatch/config"
	"golang.org/x/xerrors"
)

type clientAPI int

const (
	openGL clientAPI = iota
	openGLES
)

type creationAPI int

const (
	nativeContext creationAPI = iota
	eglContext
	osmesaContext
)

// contextSpec describes the context a backend asks GLFW for.
type contextSpec struct {
	api          clientAPI
	creation     creationAPI
	major, minor int
	// extended backends expose the ES 3.0 API.
	extended bool
}

func (s contextSpec) String() string {
	api := "OpenGL"
	if s.api == openGLES {
		api = "OpenGL ES"
	}
	via := [...]string{"native", "EGL", "OSMesa"}[s.creation]
	return fmt.Sprintf("%s %d.%d via %s", api, s.major, s.minor, via)
}

// angleOnly is set where golang.org/x/mobile/gl calls into ANGLE's
// libGLESv2. Only an OpenGL ES context created through EGL receives those
// calls, so every backend asks for one.
var angleOnly = runtime.GOOS == "windows"

// specFor returns the context requested by backend name.
func specFor(name string, cfg *config.Config) (contextSpec, error) {
	var s contextSpec
	switch name {
	case "gl2":
		s = contextSpec{api: openGL, creation: nativeContext, major: 2, minor: 1}
	case "es2":
		s = contextSpec{api: openGLES, creation: eglContext, major: 2, minor: 0}
	case "glplus":
		s = contextSpec{api: openGLES, creation: eglContext, major: 3, minor: 0, extended: true}
	default:
		return contextSpec{}, xerrors.Errorf("gldriver: no backend named %q", name)
	}
	switch {
	case angleOnly:
		if s.api == openGL {
			s.api, s.major, s.minor = openGLES, 2, 0
		}
		s.creation = eglContext
	case cfg != nil && cfg.TestingApp == "osmesa":
		s.creation = osmesaContext
	}
	return s, nil
}
