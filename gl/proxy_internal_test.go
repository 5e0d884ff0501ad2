// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gl

import (
	"strings"
	"testing"
	"unicode/utf8"
)

type matrix [][]float64

func (m matrix) Shape() []int { return []int{len(m), len(m[0])} }

func grid(rows, cols int) [][]float32 {
	g := make([][]float32, rows)
	for i := range g {
		g[i] = make([]float32, cols)
	}
	return g
}

func TestArgRepr(t *testing.T) {
	long := strings.Repeat("x", 50)
	tests := []struct {
		name string
		arg  any
		want string
	}{
		{"nil", nil, "nil"},
		{"int", 42, "42"},
		{"enum", Enum(0x4000), "GL_COLOR_BUFFER_BIT"},
		{"shared enum value", Enum(0), "0x0"},
		{"short string", "vPosition", `"vPosition"`},
		{"short slice", []float32{1, 2, 3}, "[1 2 3]"},
		{"long string", long, `"` + long[:36] + "..."},
		{"long multibyte string", "a" + strings.Repeat("é", 30), `"a` + strings.Repeat("é", 17) + "..."},
		{"long slice", grid(5, 8), "array:5x8"},
		{"long array", [30]int{}, "array:30"},
		{"shaper", matrix(grid64(3, 4)), "array:3x4"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := argRepr(test.arg)
			if got != test.want {
				t.Errorf("argRepr = %q, want %q", got, test.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("argRepr = %q is not valid UTF-8", got)
			}
			if len(got) > maxArgRepr {
				t.Errorf("argRepr = %q is longer than %d", got, maxArgRepr)
			}
		})
	}
}

func grid64(rows, cols int) [][]float64 {
	g := make([][]float64, rows)
	for i := range g {
		g[i] = make([]float64, cols)
		for j := range g[i] {
			g[i][j] = 1.0 / 3
		}
	}
	return g
}

func TestToEnum(t *testing.T) {
	tests := []struct {
		in   any
		want Enum
		ok   bool
	}{
		{INVALID_ENUM, INVALID_ENUM, true},
		{uint32(0x505), OUT_OF_MEMORY, true},
		{int(0x502), INVALID_OPERATION, true},
		{-1, 0, false},
		{"GL_NO_ERROR", 0, false},
		{nil, 0, false},
	}
	for _, test := range tests {
		got, ok := toEnum(test.in)
		if got != test.want || ok != test.ok {
			t.Errorf("toEnum(%#v) = %v, %t; want %v, %t", test.in, got, ok, test.want, test.ok)
		}
	}
}

func TestEnumString(t *testing.T) {
	// 0x0, 0x1 and 0x8009 each have several ES 2.0 names.
	for e, want := range map[Enum]string{
		INVALID_FRAMEBUFFER_OPERATION: "GL_INVALID_FRAMEBUFFER_OPERATION",
		0x84C5:                        "GL_TEXTURE5",
		0x0004:                        "GL_TRIANGLES",
		0x0000:                        "0x0",
		0x0001:                        "0x1",
		0x8009:                        "0x8009",
		0xDEAD:                        "0xDEAD",
	} {
		if got := e.String(); got != want {
			t.Errorf("Enum(%#x).String() = %q, want %q", uint32(e), got, want)
		}
	}
	if name, ok := EnumName(0); ok {
		t.Errorf("EnumName(0) = %q, want no name", name)
	}
}

func TestErrorName(t *testing.T) {
	for e, want := range map[Enum]string{
		NO_ERROR:     "GL_NO_ERROR",
		INVALID_ENUM: "GL_INVALID_ENUM",
		0x1234:       "0x1234",
	} {
		if got := errorName(e); got != want {
			t.Errorf("errorName(%#x) = %q, want %q", uint32(e), got, want)
		}
	}
}
