// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gl provides a functional API to OpenGL ES 2.0 whose
// implementation is chosen at run time.
//
// There are several backend implementations of the API. Backend packages
// register themselves with Register when imported; a Facade then selects
// one by name:
//
//	import _ "golang.org/x/exp/gldispatch/driver/gldriver"
//
//	f := gl.New()
//	if err := f.Use("gl2 debug"); err != nil {
//		log.Fatal(err)
//	}
//	f.Call("glClearColor", float32(0), float32(0), float32(0), float32(1))
//	f.Call("glClear", f.MustConstant("GL_COLOR_BUFFER_BIT"))
//
// The backends provided by this module are:
//
//   - gl2: the ES 2.0 subset of desktop OpenGL
//   - gl+ (glplus): the ES 2.0 subset plus the ES 3 functions and constants
//     the platform provides
//   - es2: an OpenGL ES 2.0 library through EGL (ANGLE on Windows)
//   - dummy: refuses every call, for when rendering happens elsewhere
//
// Functions are named as in the C API, with a gl prefix, and constants
// carry a GL_ prefix. Each call results in exactly one call into the
// backend. Arguments are not checked beyond what Go's type conversions
// require.
//
// The "debug" target option, or the gl_debug configuration setting, makes
// every call go through a proxy that logs it and its result and then
// drains the backend's error queue, returning an *Error when the call
// left errors pending. Without it, errors are only reported by explicit
// calls to CheckError.
//
// For documentation of the individual functions see
// https://www.khronos.org/opengles/sdk/docs/man/.
package gl
