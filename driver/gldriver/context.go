// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build cgo && (linux || windows)
// +build cgo
// +build linux windows

package gldriver

import (
	"runtime"
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
	mobilegl "golang.org/x/mobile/gl"
	"golang.org/x/xerrors"
)

var (
	glfwOnce  sync.Once
	glfwErr   error
	glfwCalls = make(chan func())
)

// startGLFW initializes GLFW on a locked thread that then serves
// glfwCalls for the life of the process.
func startGLFW() {
	errc := make(chan error)
	go func() {
		runtime.LockOSThread()
		err := glfw.Init()
		errc <- err
		if err != nil {
			return
		}
		for f := range glfwCalls {
			f()
		}
	}()
	glfwErr = <-errc
}

// onGLFWThread runs f on the GLFW thread and waits for it to return.
// Initialization and window management must all happen on that one thread.
func onGLFWThread(f func()) error {
	glfwOnce.Do(startGLFW)
	if glfwErr != nil {
		return xerrors.Errorf("glfw: %w", glfwErr)
	}
	done := make(chan struct{})
	glfwCalls <- func() {
		defer close(done)
		f()
	}
	<-done
	return nil
}

// context is a GL context current on a dedicated, locked OS thread. Calls
// made through glctx are executed on that thread.
type context struct {
	glctx mobilegl.Context

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// newContext creates a hidden window holding a context described by s.
func newContext(s contextSpec) (*context, error) {
	glctx, worker := mobilegl.NewContext()
	c := &context{
		glctx: glctx,
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}

	errc := make(chan error)
	go func() {
		runtime.LockOSThread()
		defer close(c.done)

		var win *glfw.Window
		var err error
		if gerr := onGLFWThread(func() { win, err = createWindow(s) }); gerr != nil {
			err = gerr
		}
		if err != nil {
			errc <- err
			return
		}
		win.MakeContextCurrent()
		errc <- nil

		workAvailable := worker.WorkAvailable()
		for {
			select {
			case <-workAvailable:
				worker.DoWork()
			case <-c.stop:
				glfw.DetachCurrentContext()
				onGLFWThread(win.Destroy)
				return
			}
		}
	}()
	if err := <-errc; err != nil {
		return nil, err
	}
	return c, nil
}

// createWindow runs on the GLFW thread. The context is made current by
// the caller on its own thread.
func createWindow(s contextSpec) (*glfw.Window, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, s.major)
	glfw.WindowHint(glfw.ContextVersionMinor, s.minor)
	switch s.api {
	case openGL:
		glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLAPI)
	case openGLES:
		glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
	}
	switch s.creation {
	case nativeContext:
		glfw.WindowHint(glfw.ContextCreationAPI, glfw.NativeContextAPI)
	case eglContext:
		glfw.WindowHint(glfw.ContextCreationAPI, glfw.EGLContextAPI)
	case osmesaContext:
		glfw.WindowHint(glfw.ContextCreationAPI, glfw.OSMesaContextAPI)
	}
	win, err := glfw.CreateWindow(1, 1, "gldispatch", nil, nil)
	if err != nil {
		return nil, xerrors.Errorf("glfw: creating %v context: %w", s, err)
	}
	return win, nil
}

// close stops the worker thread and destroys the window.
func (c *context) close() {
	c.stopOnce.Do(func() {
		close(c.stop)
		<-c.done
	})
}
