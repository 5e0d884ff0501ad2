// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gldriver registers the native GL backends:
//
//	gl2     desktop OpenGL 2.1 context (OpenGL ES 2.0 through ANGLE on Windows)
//	es2     OpenGL ES 2.0 context created through EGL (ANGLE on Windows)
//	glplus  OpenGL ES 3.0 context exposing the full golang.org/x/mobile/gl API
//
// Import it for its side effect:
//
//	import _ "golang.org/x/exp/gldispatch/driver/gldriver"
//
// GLFW is initialized on one locked OS thread, which creates and destroys
// every window. Each backend owns a hidden window whose context is current
// on a second, per-backend thread; calls are forwarded to that thread by
// golang.org/x/mobile/gl. Closing a backend destroys its window, and its
// functions then fail with ErrClosed.
//
// On Windows golang.org/x/mobile/gl always calls ANGLE's libGLESv2, so
// every backend gets an OpenGL ES context created through EGL.
//
// When the configuration's TestingApp is "osmesa", contexts are created
// off-screen with OSMesa and no display server is needed.
//
// Without cgo, or on other platforms including macOS, the backends are
// registered but fail to open with ErrUnsupported. Cocoa only creates
// windows on the process main thread, which this package does not own.
package gldriver // import "golang.org/x/exp/gldispatch/driver/gldriver"
