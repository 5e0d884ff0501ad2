// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl

import (
	"fmt"
	"reflect"
)

// Enum is a GL enumerated value or error code.
type Enum uint32

// Error codes returned by glGetError.
const (
	NO_ERROR                      Enum = 0x0000
	INVALID_ENUM                  Enum = 0x0500
	INVALID_VALUE                 Enum = 0x0501
	INVALID_OPERATION             Enum = 0x0502
	OUT_OF_MEMORY                 Enum = 0x0505
	INVALID_FRAMEBUFFER_OPERATION Enum = 0x0506
)

var errorNames = map[Enum]string{
	NO_ERROR:                      "GL_NO_ERROR",
	INVALID_ENUM:                  "GL_INVALID_ENUM",
	INVALID_VALUE:                 "GL_INVALID_VALUE",
	INVALID_OPERATION:             "GL_INVALID_OPERATION",
	OUT_OF_MEMORY:                 "GL_OUT_OF_MEMORY",
	INVALID_FRAMEBUFFER_OPERATION: "GL_INVALID_FRAMEBUFFER_OPERATION",
}

// String returns the GL_ name of e when exactly one ES 2.0 constant has
// that value, and its hexadecimal value otherwise. GL_POINTS and
// GL_NO_ERROR are both 0, so Enum(0) prints as 0x0.
func (e Enum) String() string {
	if name, ok := enumNames[e]; ok {
		return name
	}
	return fmt.Sprintf("0x%X", uint32(e))
}

// EnumName returns the GL_ name of e if exactly one ES 2.0 constant has
// that value.
func EnumName(e Enum) (string, bool) {
	name, ok := enumNames[e]
	return name, ok
}

// errorName returns the name of e read as a glGetError code.
func errorName(e Enum) string {
	if name, ok := errorNames[e]; ok {
		return name
	}
	return e.String()
}

// toEnum converts an integer-kinded value, such as the result of a
// backend's glGetError, to an Enum.
func toEnum(v any) (Enum, bool) {
	if e, ok := v.(Enum); ok {
		return e, true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Enum(rv.Uint()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if rv.Int() < 0 {
			return 0, false
		}
		return Enum(rv.Int()), true
	}
	return 0, false
}
