// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"
	"io"
	"os"
	"strings"

	"golang.org/x/exp/gldispatch/gl"
	"golang.org/x/image/bmp"
	"golang.org/x/xerrors"
)

type options struct {
	target        string
	list          bool
	snapshot      string
	width, height int
}

var driverStrings = []string{
	"GL_VENDOR",
	"GL_RENDERER",
	"GL_VERSION",
	"GL_SHADING_LANGUAGE_VERSION",
}

func run(w io.Writer, f *gl.Facade, o options) error {
	if err := f.Use(o.target); err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintf(w, "backend: %s\n", f.Backend().Name())
	fmt.Fprintf(w, "debug: %t\n", f.Debug())
	for _, name := range driverStrings {
		v, err := f.Call("glGetString", f.MustConstant(name))
		if err != nil {
			fmt.Fprintf(w, "%s: %v\n", name, err)
			continue
		}
		fmt.Fprintf(w, "%s: %v\n", name, v)
	}

	if o.list {
		for _, name := range f.Namespace().Names() {
			if strings.HasPrefix(strings.ToLower(name), "gl") {
				fmt.Fprintln(w, name)
			}
		}
	}

	if o.snapshot != "" {
		img, err := readFramebuffer(f, o.width, o.height)
		if err != nil {
			return xerrors.Errorf("snapshot: %w", err)
		}
		if err := writeBMP(o.snapshot, img); err != nil {
			return xerrors.Errorf("snapshot: %w", err)
		}
		fmt.Fprintf(w, "wrote %s\n", o.snapshot)
	}
	return f.CheckError("glinfo")
}

// readFramebuffer clears an off-screen framebuffer of the given size and
// reads it back.
func readFramebuffer(f *gl.Facade, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, xerrors.Errorf("bad size %dx%d", width, height)
	}
	c := f.MustConstant
	var err error
	call := func(name string, args ...any) any {
		if err != nil {
			return nil
		}
		var v any
		v, err = f.Call(name, args...)
		return v
	}

	fb := call("glCreateFramebuffer")
	call("glBindFramebuffer", c("GL_FRAMEBUFFER"), fb)
	rb := call("glCreateRenderbuffer")
	call("glBindRenderbuffer", c("GL_RENDERBUFFER"), rb)
	call("glRenderbufferStorage", c("GL_RENDERBUFFER"), c("GL_RGBA4"), width, height)
	call("glFramebufferRenderbuffer", c("GL_FRAMEBUFFER"), c("GL_COLOR_ATTACHMENT0"), c("GL_RENDERBUFFER"), rb)
	call("glViewport", 0, 0, width, height)
	call("glClearColor", float32(0.2), float32(0.4), float32(0.6), float32(1))
	call("glClear", c("GL_COLOR_BUFFER_BIT"))

	pix := make([]byte, 4*width*height)
	call("glReadPixels", pix, 0, 0, width, height, c("GL_RGBA"), c("GL_UNSIGNED_BYTE"))
	call("glBindFramebuffer", c("GL_FRAMEBUFFER"), nil)
	call("glDeleteRenderbuffer", rb)
	call("glDeleteFramebuffer", fb)
	if err != nil {
		return nil, err
	}

	// GL rows start at the bottom. The snapshot is written opaque.
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	stride := 4 * width
	for y := 0; y < height; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+stride]
		copy(row, pix[(height-1-y)*stride:(height-y)*stride])
		for i := 3; i < len(row); i += 4 {
			row[i] = 0xff
		}
	}
	return img, nil
}

func writeBMP(path string, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := bmp.Encode(out, img); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
