// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gltest provides fake GL backends that record the calls made to
// them, and a logger that records into the same event list, so tests can
// check the order in which a facade calls, logs and checks errors.
package gltest

import (
	"fmt"

	"github.com/go-logr/logr"
	"golang.org/x/exp/gldispatch/config"
	"golang.org/x/exp/gldispatch/gl"
)

// A Recorder collects events in the order they happen.
type Recorder struct {
	Events []string
}

// Add appends an event.
func (r *Recorder) Add(format string, args ...any) {
	r.Events = append(r.Events, fmt.Sprintf(format, args...))
}

// Reset discards the recorded events.
func (r *Recorder) Reset() { r.Events = nil }

// Logger returns a logger that records each message as "log: msg" and each
// error as "error: msg".
func (r *Recorder) Logger() logr.Logger {
	return logr.New(recordSink{r})
}

type recordSink struct {
	r *Recorder
}

func (recordSink) Init(logr.RuntimeInfo)  {}
func (recordSink) Enabled(level int) bool { return true }

func (s recordSink) Info(level int, msg string, keysAndValues ...any) {
	s.r.Add("log: %s", msg)
}

func (s recordSink) Error(err error, msg string, keysAndValues ...any) {
	s.r.Add("error: %s: %v", msg, err)
}

func (s recordSink) WithValues(keysAndValues ...any) logr.LogSink { return s }
func (s recordSink) WithName(name string) logr.LogSink            { return s }

// A Call is one recorded backend call.
type Call struct {
	Name string
	Args []any
}

// A Backend is a fake GL backend defining every ES 2.0 function. Calls are
// recorded; functions return nil unless a result is set with SetResult.
// glGetError returns the codes queued with QueueErrors, then GL_NO_ERROR.
type Backend struct {
	// Recorder receives "call: name" for every call, including glGetError.
	Recorder *Recorder
	Calls    []Call
	Closed   bool

	name    string
	syms    gl.Table
	queue   []gl.Enum
	results map[string]any
	errs    map[string]error
}

// New returns a backend named name that records into a new Recorder.
func New(name string) *Backend {
	b := &Backend{
		Recorder: &Recorder{},
		name:     name,
		syms:     make(gl.Table),
		results:  make(map[string]any),
		errs:     make(map[string]error),
	}
	for _, sig := range gl.ES2Functions() {
		b.AddFunction(sig.Name, sig.Returns)
	}
	b.syms.AddConstants(gl.ES2Constants()...)
	return b
}

func (b *Backend) Name() string            { return b.name }
func (b *Backend) Symbols() map[string]any { return b.syms }

// Close marks the backend closed. Calls made after Close still succeed and
// are recorded, so tests can detect them.
func (b *Backend) Close() error {
	b.Closed = true
	return nil
}

// Factory returns a factory that always opens b.
func (b *Backend) Factory() gl.Factory {
	return func(*config.Config) (gl.Backend, error) { return b, nil }
}

// AddFunction defines a recording function.
func (b *Backend) AddFunction(name string, returns bool) {
	b.syms.Add(&gl.Function{
		Name:    name,
		Returns: returns,
		Call: func(args ...any) (any, error) {
			return b.call(name, args)
		},
	})
}

// AddConstant defines a constant.
func (b *Backend) AddConstant(name string, v gl.Enum) {
	b.syms[name] = v
}

// Remove deletes a function or constant.
func (b *Backend) Remove(name string) {
	delete(b.syms, name)
}

// QueueErrors appends codes to the error queue drained by glGetError.
func (b *Backend) QueueErrors(codes ...gl.Enum) {
	b.queue = append(b.queue, codes...)
}

// GetErrorCalls returns the number of glGetError calls so far.
func (b *Backend) GetErrorCalls() int {
	n := 0
	for _, c := range b.Calls {
		if c.Name == "glGetError" {
			n++
		}
	}
	return n
}

// SetResult makes the function name return v.
func (b *Backend) SetResult(name string, v any) { b.results[name] = v }

// SetError makes the function name fail with err.
func (b *Backend) SetError(name string, err error) { b.errs[name] = err }

func (b *Backend) call(name string, args []any) (any, error) {
	b.Calls = append(b.Calls, Call{Name: name, Args: args})
	b.Recorder.Add("call: %s", name)
	if err := b.errs[name]; err != nil {
		return nil, err
	}
	if name == "glGetError" {
		if len(b.queue) == 0 {
			return gl.NO_ERROR, nil
		}
		code := b.queue[0]
		b.queue = b.queue[1:]
		return code, nil
	}
	return b.results[name], nil
}

// Extended-only symbols defined by NewExtended.
const (
	ExtraFunction = "glBlitFramebuffer"
	ExtraConstant = "GL_READ_FRAMEBUFFER"
)

// An ExtendedBackend is a fake extended backend. Its own table holds the
// ES 2.0 set plus ExtraFunction and ExtraConstant; ES2 returns a separate
// recording backend that shares its Recorder.
type ExtendedBackend struct {
	*Backend
	ES2Backend *Backend
}

// NewExtended returns an extended backend named name.
func NewExtended(name string) *ExtendedBackend {
	x := &ExtendedBackend{Backend: New(name), ES2Backend: New(name + "/es2")}
	x.ES2Backend.Recorder = x.Recorder
	x.AddFunction(ExtraFunction, false)
	x.AddConstant(ExtraConstant, 0x8CA8)
	return x
}

func (x *ExtendedBackend) ES2() gl.Source { return x.ES2Backend }

// Factory returns a factory that always opens x.
func (x *ExtendedBackend) Factory() gl.Factory {
	return func(*config.Config) (gl.Backend, error) { return x, nil }
}
